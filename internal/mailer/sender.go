package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/kchglobal/minutes-flow/internal/logger"
)

// Sender delivers one assembled message over a mail backend.
type Sender interface {
	Send(ctx context.Context, m *gomail.Message) error
}

// Report aggregates a batch send: how many went out and which addresses
// failed, with the error per address. One failure never aborts the batch.
type Report struct {
	Sent   int
	Failed []string
}

// SendAll builds and sends one message per preview, isolating per-recipient
// failures into the report. There is no retry; the operator re-runs the
// batch manually.
func SendAll(ctx context.Context, sender Sender, senderName, senderEmail string, previews []Preview, logo []byte, logoURL string, log logger.Logger) Report {
	var report Report
	for _, p := range previews {
		m := BuildMessage(senderName, senderEmail, p, logo, logoURL)
		if err := sender.Send(ctx, m); err != nil {
			log.Error(ctx, "Send to %s failed: %v", p.To, err)
			report.Failed = append(report.Failed, fmt.Sprintf("%s: %v", p.To, err))
			continue
		}
		log.Info(ctx, "Sent to %s <%s>", p.Name, p.To)
		report.Sent++
	}
	return report
}
