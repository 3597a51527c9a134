package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kchglobal/minutes-flow/internal/meeting"
	"github.com/kchglobal/minutes-flow/internal/roster"
)

// stubGenerator returns canned text, failing for recipients whose name
// appears in failFor.
type stubGenerator struct {
	text    string
	failFor string
	calls   int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.failFor != "" && strings.Contains(prompt, s.failFor) {
		return "", errors.New("quota exceeded")
	}
	return s.text, nil
}

func testRecipients() []roster.Recipient {
	return []roster.Recipient{
		{Name: "Kim", Email: "kim@x.com", CCDefault: true, Manager: "boss@x.com"},
		{Name: "Park", Email: "park@y.com"},
	}
}

func TestBuildFollowupPreviews(t *testing.T) {
	gen := &stubGenerator{text: "Subject: 개인 결과\n본문입니다"}
	meta := meeting.Meta{Title: "전략회의", Refs: "https://refs.example"}

	previews, err := BuildFollowupPreviews(context.Background(), gen, meta, testRecipients(), FollowupOptions{
		Subject:   "[전략회의] 결과",
		Summary:   "요약",
		DocURL:    "https://docs.google.com/d/x",
		Signature: "sig",
		ManualCC:  []string{"audit@x.com"},
		BCC:       []string{"archive@x.com"},
	})
	if err != nil {
		t.Fatalf("BuildFollowupPreviews() error = %v", err)
	}

	if len(previews) != 2 {
		t.Fatalf("got %d previews, want 2", len(previews))
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want one call per recipient", gen.calls)
	}

	kim := previews[0]
	if kim.Subject != "개인 결과" || kim.Body != "본문입니다" {
		t.Errorf("subject/body not split: %+v", kim)
	}
	if kim.Fallback {
		t.Error("successful generation marked as fallback")
	}
	// Manager auto-CC rides on the CC-default flag.
	if len(kim.CC) != 2 || kim.CC[1] != "boss@x.com" {
		t.Errorf("Kim CC = %v, want manual + manager", kim.CC)
	}
	if len(previews[1].CC) != 1 || previews[1].CC[0] != "audit@x.com" {
		t.Errorf("Park CC = %v, want manual only", previews[1].CC)
	}
	if previews[1].BCC[0] != "archive@x.com" {
		t.Errorf("BCC = %v", previews[1].BCC)
	}
}

func TestBuildFollowupPreviewsIsolatesFailure(t *testing.T) {
	// Kim's generation fails; Park's succeeds. The batch carries both.
	// The salutation "Kim님" only appears in Kim's own prompt; the shared
	// summary mentions Kim for everyone.
	gen := &stubGenerator{text: "Subject: OK\n본문", failFor: "Kim님"}
	meta := meeting.Meta{Title: "전략회의"}

	previews, err := BuildFollowupPreviews(context.Background(), gen, meta, testRecipients(), FollowupOptions{
		Subject:   "[전략회의] 결과",
		Summary:   "Kim: 배포 계획",
		Signature: "sig",
	})
	if err != nil {
		t.Fatalf("BuildFollowupPreviews() error = %v", err)
	}

	if !previews[0].Fallback {
		t.Error("failed generation should be marked Fallback")
	}
	if previews[0].Subject != "[전략회의] 결과" {
		t.Errorf("fallback subject = %q, want manual subject", previews[0].Subject)
	}
	if !strings.Contains(previews[0].Body, "안녕하세요, Kim님.") {
		t.Errorf("fallback body not templated:\n%s", previews[0].Body)
	}
	if previews[1].Fallback || previews[1].Body != "본문" {
		t.Errorf("Park should be unaffected: %+v", previews[1])
	}
}

func TestBuildInvitePreviewsSharedBody(t *testing.T) {
	gen := &stubGenerator{text: "초대 본문"}
	meta := meeting.Meta{Title: "전략회의"}

	previews, err := BuildInvitePreviews(context.Background(), gen, meta, testRecipients(), InviteOptions{
		Subject:     "[전략회의] 회의 초대",
		MeetingInfo: "- 회의명: 전략회의",
	})
	if err != nil {
		t.Fatalf("BuildInvitePreviews() error = %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator called %d times, want a single shared call", gen.calls)
	}
	if previews[0].Body != previews[1].Body || previews[0].Body != "초대 본문" {
		t.Errorf("invite body should be shared: %+v", previews)
	}
	if previews[0].Subject != "[전략회의] 회의 초대" {
		t.Errorf("subject = %q", previews[0].Subject)
	}
}

func TestBuildInvitePreviewsFallback(t *testing.T) {
	gen := &stubGenerator{failFor: "전략회의", text: "unused"}
	meta := meeting.Meta{Title: "전략회의"}

	previews, err := BuildInvitePreviews(context.Background(), gen, meta, testRecipients(), InviteOptions{
		Subject:     "제목",
		MeetingInfo: "- 회의명: 전략회의",
	})
	if err != nil {
		t.Fatalf("BuildInvitePreviews() error = %v", err)
	}
	if !previews[0].Fallback || !strings.Contains(previews[0].Body, "- 회의명: 전략회의") {
		t.Errorf("invite fallback should wrap the raw info: %+v", previews[0])
	}
}
