package mailer

import (
	"fmt"
	"html"
	"io"
	"strings"

	"gopkg.in/gomail.v2"
)

const logoCID = "kch-logo.png"

// htmlBody renders the plain-text body as an HTML alternative. The logo is
// referenced by cid when inlined, by URL otherwise.
func htmlBody(body, logoURL string, inline bool) string {
	escaped := make([]string, 0, 8)
	for _, line := range strings.Split(body, "\n") {
		escaped = append(escaped, html.EscapeString(line))
	}

	var img string
	switch {
	case inline:
		img = fmt.Sprintf(`<br><br><img src="cid:%s" alt="KCH Logo" style="width:220px;max-width:100%%;margin-top:16px;" />`, logoCID)
	case logoURL != "":
		img = fmt.Sprintf(`<br><br><img src="%s" alt="KCH Logo" style="width:220px;max-width:100%%;margin-top:16px;" />`, logoURL)
	}

	return fmt.Sprintf(
		`<div style="font-family:Arial,sans-serif;font-size:14px;line-height:1.6;">%s%s</div>`,
		strings.Join(escaped, "<br>"), img,
	)
}

// BuildMessage assembles the MIME message for one preview: plain text plus
// an HTML alternative, with the logo embedded inline when its bytes are
// available.
func BuildMessage(senderName, senderEmail string, p Preview, logo []byte, logoURL string) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetAddressHeader("From", senderEmail, senderName)
	m.SetHeader("To", p.To)
	if len(p.CC) > 0 {
		m.SetHeader("Cc", p.CC...)
	}
	if len(p.BCC) > 0 {
		m.SetHeader("Bcc", p.BCC...)
	}
	m.SetHeader("Subject", p.Subject)

	inline := len(logo) > 0
	m.SetBody("text/plain", p.Body)
	m.AddAlternative("text/html", htmlBody(p.Body, logoURL, inline))

	if inline {
		m.Embed(logoCID, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(logo)
			return err
		}))
	}

	return m
}
