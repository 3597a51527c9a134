package mailer

import (
	"fmt"
	"strings"
)

// personalActions pulls up to five summary lines mentioning the recipient,
// or a placeholder when none mention them.
func personalActions(summary, name string) []string {
	var out []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && name != "" && strings.Contains(line, name) {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return []string{"(확인 필요) 개인 액션아이템 지정 필요"}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// FallbackBody is the templated, non-generated follow-up body used when the
// generation call for one recipient fails. It keeps the batch going with a
// serviceable mail instead of aborting everyone else's.
func FallbackBody(name, title, summary, docURL, refs, signature string) string {
	var actions strings.Builder
	for i, a := range personalActions(summary, name) {
		if i > 0 {
			actions.WriteString("\n")
		}
		actions.WriteString("- [ ] " + a)
	}

	orNeeded := func(s string) string {
		if s == "" {
			return "(확인 필요)"
		}
		return s
	}

	return fmt.Sprintf(
		"안녕하세요, %s님.\n\n1) 감사합니다\n- 회의 참석 감사합니다.\n\n"+
			"2) 오늘 합의/결정된 내용 요약\n- %s\n\n"+
			"3) %s님의 할 일 (우선순위 순)\n%s\n\n"+
			"4) 전체 액션아이템(참고)\n- (확인 필요)\n\n"+
			"5) 다음 일정\n- 다음 회의: (확인 필요)\n- 필요 시: 개별 안내\n\n"+
			"6) 참고 링크/회의록\n- 회의록(Google Doc): %s\n- 기타: %s\n\n"+
			"감사합니다.\n%s",
		name, orNeeded(title), name, actions.String(),
		orNeeded(docURL), orNeeded(refs), signature,
	)
}

// inviteFallbackBody wraps the raw meeting info when invite generation
// fails.
func inviteFallbackBody(meetingInfo string) string {
	return fmt.Sprintf("안녕하세요.\n\n%s\n\n감사합니다.", meetingInfo)
}
