// Package roster normalizes the people spreadsheet and resolves who a
// mail batch actually goes to.
package roster

import (
	"fmt"
	"strings"

	"github.com/kchglobal/minutes-flow/pkg/textutil"
)

// Canonical column order. Name and Email are required; the rest are
// synthesized when absent.
var (
	requiredColumns = []string{"Name", "Email"}
	optionalColumns = []string{"Dept", "Title", "Team", "Role", "Lang", "Timezone", "IsCCDefault", "ManagerEmail"}
)

// Record is one normalized roster row.
type Record struct {
	Name         string
	Email        string
	Dept         string
	Title        string
	Team         string
	Role         string
	Lang         string
	Timezone     string
	IsCCDefault  bool
	ManagerEmail string
}

// External is an ad-hoc attendee outside the roster file.
type External struct {
	Name  string
	Email string
}

// MissingColumnError reports required columns absent after alias
// resolution.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("필수 컬럼 누락: %s", strings.Join(e.Columns, ", "))
}

// Header returns the fixed canonical column order.
func Header() []string {
	out := make([]string, 0, len(requiredColumns)+len(optionalColumns))
	out = append(out, requiredColumns...)
	out = append(out, optionalColumns...)
	return out
}

// Normalize turns a raw table (header row first) into canonical records.
// Header matching is case-insensitive and whitespace-tolerant. Rows where
// both Name and Email are empty after trimming are dropped; nothing else
// is filtered. Pure transform: the caller owns all I/O.
func Normalize(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Columns: requiredColumns}
	}

	// Map each canonical column to its source index in the uploaded header.
	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	col := make(map[string]int, len(requiredColumns)+len(optionalColumns))
	var missing []string
	for _, c := range requiredColumns {
		i, ok := index[strings.ToLower(c)]
		if !ok {
			missing = append(missing, c)
			continue
		}
		col[c] = i
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}
	for _, c := range optionalColumns {
		if i, ok := index[strings.ToLower(c)]; ok {
			col[c] = i
		} else {
			col[c] = -1 // synthesized
		}
	}

	cell := func(row []string, name string) string {
		i := col[name]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := Record{
			Name:         cell(row, "Name"),
			Email:        cell(row, "Email"),
			Dept:         cell(row, "Dept"),
			Title:        cell(row, "Title"),
			Team:         cell(row, "Team"),
			Role:         cell(row, "Role"),
			Lang:         cell(row, "Lang"),
			Timezone:     cell(row, "Timezone"),
			IsCCDefault:  textutil.CoerceBool(cell(row, "IsCCDefault")),
			ManagerEmail: cell(row, "ManagerEmail"),
		}
		if rec.Name == "" && rec.Email == "" {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// ToRows serializes records back to a table in canonical column order,
// header row first. Normalize(ToRows(recs)) round-trips losslessly.
func ToRows(records []Record) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Header())
	for _, r := range records {
		cc := "false"
		if r.IsCCDefault {
			cc = "true"
		}
		rows = append(rows, []string{
			r.Name, r.Email, r.Dept, r.Title, r.Team,
			r.Role, r.Lang, r.Timezone, cc, r.ManagerEmail,
		})
	}
	return rows
}

// NormalizeExternal trims ad-hoc rows and drops fully empty ones.
func NormalizeExternal(rows []External) []External {
	out := make([]External, 0, len(rows))
	for _, r := range rows {
		r.Name = strings.TrimSpace(r.Name)
		r.Email = strings.TrimSpace(r.Email)
		if r.Name == "" && r.Email == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
