package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"

	"github.com/kchglobal/minutes-flow/internal/logger"
)

func TestHTMLBody(t *testing.T) {
	got := htmlBody("줄1\n<b>줄2</b>", "https://logo.example/l.png", false)
	if !strings.Contains(got, "줄1<br>") {
		t.Errorf("lines not joined with <br>: %s", got)
	}
	if strings.Contains(got, "<b>줄2</b>") {
		t.Error("body HTML should be escaped")
	}
	if !strings.Contains(got, `src="https://logo.example/l.png"`) {
		t.Error("remote logo URL missing without inline bytes")
	}

	inline := htmlBody("x", "https://logo.example/l.png", true)
	if !strings.Contains(inline, "cid:"+logoCID) {
		t.Error("inline logo should be referenced by cid")
	}
}

func TestBuildMessageHeaders(t *testing.T) {
	p := Preview{
		Name:    "Kim",
		To:      "kim@x.com",
		CC:      []string{"boss@x.com"},
		BCC:     []string{"archive@x.com"},
		Subject: "제목",
		Body:    "본문",
	}

	m := BuildMessage("KCH Global", "bot@kch.example", p, nil, "https://logo.example/l.png")

	if got := m.GetHeader("To"); len(got) != 1 || got[0] != "kim@x.com" {
		t.Errorf("To = %v", got)
	}
	if got := m.GetHeader("Cc"); len(got) != 1 || got[0] != "boss@x.com" {
		t.Errorf("Cc = %v", got)
	}
	if got := m.GetHeader("Bcc"); len(got) != 1 || got[0] != "archive@x.com" {
		t.Errorf("Bcc = %v", got)
	}
	if got := m.GetHeader("From"); len(got) != 1 || !strings.Contains(got[0], "bot@kch.example") {
		t.Errorf("From = %v", got)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	raw := buf.String()
	if !strings.Contains(raw, "text/plain") || !strings.Contains(raw, "text/html") {
		t.Error("message should carry plain and HTML alternatives")
	}
}

type stubSender struct {
	failTo string
	sent   []string
}

func (s *stubSender) Send(ctx context.Context, m *gomail.Message) error {
	to := m.GetHeader("To")[0]
	if to == s.failTo {
		return errors.New("mailbox unavailable")
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestSendAllIsolatesFailures(t *testing.T) {
	sender := &stubSender{failTo: "bad@x.com"}
	previews := []Preview{
		{Name: "Kim", To: "kim@x.com", Subject: "s", Body: "b"},
		{Name: "Bad", To: "bad@x.com", Subject: "s", Body: "b"},
		{Name: "Park", To: "park@y.com", Subject: "s", Body: "b"},
	}

	report := SendAll(context.Background(), sender, "KCH", "bot@kch.example", previews, nil, "", logger.New("error"))

	if report.Sent != 2 {
		t.Errorf("Sent = %d, want 2", report.Sent)
	}
	if len(report.Failed) != 1 || !strings.HasPrefix(report.Failed[0], "bad@x.com:") {
		t.Errorf("Failed = %v", report.Failed)
	}
	if len(sender.sent) != 2 {
		t.Errorf("sender delivered %v", sender.sent)
	}
}
