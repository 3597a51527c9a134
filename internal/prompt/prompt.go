// Package prompt assembles the fixed instruction templates sent to the
// generation model. All five kinds share one metadata header so every
// artifact for a meeting is built from the same ground truth.
package prompt

import (
	"fmt"

	"github.com/kchglobal/minutes-flow/internal/meeting"
)

// Kind selects one of the fixed templates.
type Kind string

const (
	KindMemo       Kind = "memo"
	KindTranscript Kind = "transcript"
	KindAgenda     Kind = "agenda"
	KindInvite     Kind = "invite"
	KindFollowup   Kind = "followup"
)

// UnsupportedKindError reports a template kind outside the five recognized
// values.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("지원하지 않는 템플릿: %s", e.Kind)
}

// Build assembles the template for kind, interpolating the meeting meta and
// the payload fields the kind consumes. Missing payload keys interpolate as
// empty strings; the templates carry their own "(확인 필요)" conventions.
// Pure text construction: deterministic, no I/O.
func Build(kind Kind, meta meeting.Meta, payload map[string]string) (string, error) {
	p := func(key string) string { return payload[key] }
	cm := commonMeta(meta)

	switch kind {
	case KindMemo:
		return fmt.Sprintf(memoTemplate, cm, p("memo_text")), nil
	case KindTranscript:
		return fmt.Sprintf(transcriptTemplate, cm, p("transcript_text")), nil
	case KindAgenda:
		return fmt.Sprintf(agendaTemplate, cm, p("purpose")), nil
	case KindInvite:
		return fmt.Sprintf(inviteTemplate, cm, p("meeting_info")), nil
	case KindFollowup:
		return fmt.Sprintf(followupTemplate,
			cm,
			p("subject"),
			p("recipient_name"),
			p("recipient_name"),
			p("doc_url"),
			p("refs"),
			p("signature"),
			p("summary"),
		), nil
	}

	return "", &UnsupportedKindError{Kind: kind}
}

func commonMeta(meta meeting.Meta) string {
	return fmt.Sprintf(`[공통 지시]
- 너는 KCH Global의 "회의 운영/회의록" 담당자다.
- 사실만 기반으로 작성하고, 메모/녹취에 없는 내용은 만들지 말 것.
- 불명확하면 (확인 필요)/(결정 보류)/(추가 데이터 필요)로 표기.
- 출력 형식은 지정된 섹션/표를 반드시 따른다.

[회의 메타]
- 회의명: %s
- 일시: %s
- 장소/채널: %s
- 진행자: %s
- 서기: %s
- 참석자: %s
- 참조 링크/자료: %s
- 보안등급: %s
`,
		meta.Title, meta.Datetime, meta.Location, meta.Host,
		meta.NoteTaker, meta.Participants, meta.Refs, meta.Security,
	)
}
