// Package mailer builds, previews, and delivers the outbound meeting
// emails over either the delegated Gmail API or a direct SMTP connection.
package mailer

import "strings"

// SplitSubjectBody parses a generated block into a subject and body. When
// the first line starts with "Subject:" (any case), the subject is the rest
// of that line and the body is everything after it; otherwise the whole text
// is the body under the fallback subject. Only the follow-up flow asks the
// model to emit its own subject line.
func SplitSubjectBody(text, fallbackSubject string) (string, string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 0 && strings.HasPrefix(strings.ToLower(lines[0]), "subject:") {
		subject := strings.TrimSpace(lines[0][len("subject:"):])
		if subject == "" {
			subject = fallbackSubject
		}
		body := strings.TrimSpace(strings.Join(lines[1:], "\n"))
		return subject, body
	}
	return fallbackSubject, strings.TrimSpace(text)
}
