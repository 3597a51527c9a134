package speech

import (
	"fmt"
	"strings"
)

type taggedWord struct {
	Speaker int32
	Text    string
}

// groupBySpeaker joins consecutive words of one speaker into a
// "[화자 N]: ..." line, emitting lines in first-seen order of speaker
// switches.
func groupBySpeaker(words []taggedWord) string {
	if len(words) == 0 {
		return ""
	}

	var lines []string
	current := words[0].Speaker
	var run []string

	flush := func() {
		if len(run) > 0 {
			lines = append(lines, fmt.Sprintf("[화자 %d]: %s", current, strings.Join(run, " ")))
		}
	}

	for _, w := range words {
		if w.Speaker != current {
			flush()
			current = w.Speaker
			run = run[:0]
		}
		run = append(run, w.Text)
	}
	flush()

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
