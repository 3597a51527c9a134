package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
	"gopkg.in/gomail.v2"
)

type gmailSender struct {
	credentialsFile string
	impersonate     string
}

// NewGmailSender creates a Sender over the Gmail API using a service
// account with domain-wide delegation for the impersonated address.
func NewGmailSender(credentialsFile, impersonate string) (Sender, error) {
	if impersonate == "" {
		return nil, fmt.Errorf("gmail impersonation user is required")
	}
	return &gmailSender{
		credentialsFile: credentialsFile,
		impersonate:     impersonate,
	}, nil
}

func (g *gmailSender) Send(ctx context.Context, m *gomail.Message) error {
	data, err := os.ReadFile(g.credentialsFile)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	jwt, err := google.JWTConfigFromJSON(data, gmail.GmailSendScope)
	if err != nil {
		return fmt.Errorf("parse credentials: %w", err)
	}
	jwt.Subject = g.impersonate

	svc, err := gmail.NewService(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	if err != nil {
		return fmt.Errorf("create gmail service: %w", err)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return fmt.Errorf("serialize message: %w", err)
	}

	raw := base64.URLEncoding.EncodeToString(buf.Bytes())
	if _, err := svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}
