package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/kchglobal/minutes-flow/internal/config"
)

type smtpSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates a Sender over a direct SMTP connection.
func NewSMTPSender(cfg config.SMTPConfig) (Sender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	return &smtpSender{cfg: cfg}, nil
}

func (s *smtpSender) Send(ctx context.Context, m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = s.cfg.SSL
	if !s.cfg.SSL && s.cfg.StartTLS != nil && *s.cfg.StartTLS {
		d.TLSConfig = &tls.Config{ServerName: s.cfg.Host}
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
