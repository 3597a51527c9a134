package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/kchglobal/minutes-flow/internal/meeting"
)

func testMeta() meeting.Meta {
	return meeting.Meta{
		Title:        "주간 전략회의",
		Datetime:     "2026-09-01 10:00",
		Location:     "본사 3층",
		Host:         "Lee",
		NoteTaker:    "Choi",
		Participants: "Kim, Lee, Choi",
		Refs:         "https://docs.example/plan",
		Security:     "사내공유",
	}
}

func TestBuildCommonHeader(t *testing.T) {
	kinds := []struct {
		kind    Kind
		payload map[string]string
	}{
		{KindMemo, map[string]string{"memo_text": "메모 내용"}},
		{KindTranscript, map[string]string{"transcript_text": "녹취 내용"}},
		{KindAgenda, map[string]string{"purpose": "분기 계획 수립"}},
		{KindInvite, map[string]string{"meeting_info": "- 회의명: 전략회의"}},
		{KindFollowup, map[string]string{"recipient_name": "Kim"}},
	}

	for _, tt := range kinds {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := Build(tt.kind, testMeta(), tt.payload)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			// Every kind opens with the identical common header.
			for _, want := range []string{"[공통 지시]", "회의명: 주간 전략회의", "보안등급: 사내공유"} {
				if !strings.Contains(got, want) {
					t.Errorf("Build(%s) missing %q", tt.kind, want)
				}
			}
		})
	}
}

func TestBuildPayloadInterpolation(t *testing.T) {
	got, err := Build(KindMemo, testMeta(), map[string]string{"memo_text": "결정: 출시 연기"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(got, "<메모>: 결정: 출시 연기") {
		t.Errorf("memo payload not interpolated:\n%s", got)
	}
}

func TestBuildFollowupEmbedsRecipient(t *testing.T) {
	got, err := Build(KindFollowup, testMeta(), map[string]string{
		"recipient_name": "Kim",
		"subject":        "[전략회의] 결과",
		"doc_url":        "https://docs.google.com/document/d/abc/edit",
		"refs":           "https://docs.example/plan",
		"signature":      "KCH Global AI 회의록",
		"summary":        "요약 본문",
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// The recipient name appears at both the salutation and the personal
	// action-items section.
	if !strings.Contains(got, "안녕하세요, Kim님.") {
		t.Error("salutation missing recipient name")
	}
	if !strings.Contains(got, "3) Kim님의 할 일") {
		t.Error("personal action-items heading missing recipient name")
	}
	if !strings.Contains(got, "Subject: [전략회의] 결과") {
		t.Error("subject line missing")
	}
	if !strings.Contains(got, "회의록(Google Doc): https://docs.google.com/document/d/abc/edit") {
		t.Error("doc url missing")
	}
}

func TestBuildMissingPayloadKeys(t *testing.T) {
	got, err := Build(KindTranscript, testMeta(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(got, "<녹음본>: \n") {
		t.Error("missing payload key should interpolate as empty string")
	}
}

func TestBuildUnsupportedKind(t *testing.T) {
	out, err := Build(Kind("poem"), testMeta(), nil)
	if err == nil {
		t.Fatal("Build() should fail for unknown kind")
	}
	var ue *UnsupportedKindError
	if !errors.As(err, &ue) {
		t.Errorf("error = %T, want *UnsupportedKindError", err)
	}
	if out != "" {
		t.Errorf("Build() produced partial output %q", out)
	}
}
