package meeting

import (
	"fmt"
	"time"
)

// Meta carries the meeting metadata every generated artifact is built from.
type Meta struct {
	Title        string `yaml:"title"`
	Datetime     string `yaml:"datetime"`
	Location     string `yaml:"location"`
	Host         string `yaml:"host"`
	NoteTaker    string `yaml:"note_taker"`
	Participants string `yaml:"participants"`
	Refs         string `yaml:"refs"`
	Security     string `yaml:"security"`
}

// InfoText renders the meta as the bullet block the invite flow feeds into
// the prompt.
func (m Meta) InfoText() string {
	return fmt.Sprintf(
		"- 회의명: %s\n- 일시: %s\n- 장소/채널: %s\n- 진행자: %s\n- 참석자: %s\n- 참조 링크/자료: %s",
		m.Title, m.Datetime, m.Location, m.Host, m.Participants, m.Refs,
	)
}

// InviteSubject is the default subject for the shared invite mail.
func (m Meta) InviteSubject(now time.Time) string {
	return fmt.Sprintf("[%s] 회의 초대 (%s)", m.titleOr(), now.Format("2006-01-02"))
}

// FollowupSubject is the default subject for per-recipient follow-up mail.
func (m Meta) FollowupSubject(now time.Time) string {
	return fmt.Sprintf("[%s] 결과 및 Action Items (%s)", m.titleOr(), now.Format("2006-01-02"))
}

func (m Meta) titleOr() string {
	if m.Title == "" {
		return "회의"
	}
	return m.Title
}
