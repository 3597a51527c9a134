package roster

import (
	"fmt"
	"strings"

	"github.com/kchglobal/minutes-flow/pkg/textutil"
)

// Recipient is a resolved person a mail may be sent to. Derived and
// read-only: recomputed on every Resolve call.
type Recipient struct {
	Name      string
	Email     string
	Team      string
	Title     string
	Manager   string
	CCDefault bool
}

// Resolve merges selected roster rows with ad-hoc external rows into a
// deduplicated recipient list.
//
// An empty selection includes zero roster rows. That is a deliberate
// "nothing selected, nothing sent" guard against broadcasting to the whole
// roster; do not widen it to select-all.
//
// Selection matches the Name field exactly (case-sensitive). External rows
// with an email are always appended. Rows without an email are dropped.
// Duplicates collapse by lower-cased email, first occurrence winning, so a
// roster entry's richer metadata beats a case-variant external duplicate.
func Resolve(records []Record, selectedNames []string, external []External) []Recipient {
	selected := make(map[string]bool, len(selectedNames))
	for _, n := range selectedNames {
		selected[n] = true
	}

	var merged []Recipient
	if len(selected) > 0 {
		for _, r := range records {
			if !selected[r.Name] || r.Email == "" {
				continue
			}
			name := r.Name
			if name == "" {
				name = r.Email
			}
			merged = append(merged, Recipient{
				Name:      name,
				Email:     r.Email,
				Team:      r.Team,
				Title:     r.Title,
				Manager:   r.ManagerEmail,
				CCDefault: r.IsCCDefault,
			})
		}
	}

	for _, e := range NormalizeExternal(external) {
		if e.Email == "" {
			continue
		}
		name := e.Name
		if name == "" {
			name = e.Email
		}
		merged = append(merged, Recipient{Name: name, Email: e.Email})
	}

	out := make([]Recipient, 0, len(merged))
	seen := make(map[string]bool, len(merged))
	for _, r := range merged {
		key := strings.ToLower(r.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// EffectiveCC computes the CC list for one recipient: the manual list plus
// the manager auto-CC when the CC-default flag is set, deduplicated
// case-insensitively, with the recipient's own address removed.
func EffectiveCC(r Recipient, manualCC []string) []string {
	cc := make([]string, 0, len(manualCC)+1)
	cc = append(cc, manualCC...)
	if r.CCDefault && r.Manager != "" {
		cc = append(cc, r.Manager)
	}

	self := strings.ToLower(r.Email)
	out := make([]string, 0, len(cc))
	for _, addr := range textutil.Uniq(cc) {
		if strings.ToLower(addr) == self {
			continue
		}
		out = append(out, addr)
	}
	return out
}

// ParticipantsText renders recipients as the "Name (Team, Title, email)"
// line used for the participants metadata field.
func ParticipantsText(recipients []Recipient) string {
	items := make([]string, 0, len(recipients))
	for _, r := range recipients {
		var extras []string
		if r.Team != "" {
			extras = append(extras, r.Team)
		}
		if r.Title != "" {
			extras = append(extras, r.Title)
		}
		extra := strings.Join(extras, ", ")
		if extra != "" {
			extra += ", "
		}
		items = append(items, fmt.Sprintf("%s (%s%s)", r.Name, extra, r.Email))
	}
	return strings.Join(items, ", ")
}
