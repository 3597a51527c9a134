package prompt

// Template skeletons. The first verb is always the shared common-meta
// header; the rest are the kind-specific payload fields.

const memoTemplate = `%s
[작업]
아래 메모를 임원 공유 가능한 회의록으로 정리해라.

[출력 형식 — 반드시 준수]
# 회의록
## 1) 회의 개요
- 목적:
- 배경:
- 참석자:
- 회의 범위(오늘 다룬 것 / 다루지 않은 것):
## 2) 주요 논의 내용
- 안건 1: {안건명}
  - 현황/문제 정의:
  - 핵심 논점(찬반/대안 비교 포함):
  - 근거(메모 데이터/사실):
  - 리스크/우려:
  - 미결 질문(확인 필요):
## 3) 결정 사항 (Decision Log)
- [결정] D1. ___
- [보류] H1. ___
## 4) 액션 아이템 (Action Items)
| No | To-do | 담당자 | 마감일 | 우선순위(H/M/L) | 상태(신규/진행/보류) | 비고 |
|---|------|------|------|----------------|---------------------|-----|

[메모]
<메모>: %s
`

const transcriptTemplate = `%s
[작업]
아래 녹취(전사)를 1페이지 요약 회의록으로 작성하라.

[출력 형식 — 반드시 준수]
# 1p 요약 회의록
## 핵심 결론 (3~6줄)
- …
## 합의된 내용 / 결정 사항 (최대 7개)
- D1. …
## 핵심 논의 요약 (안건별 2~4줄)
- 안건1: …
## 리스크 / 쟁점 / 확인 필요
- 리스크:
- 쟁점:
- 확인 필요:
## 액션 아이템 (Top 5)
| To-do | 담당자 | 마감일 | 비고 |
|------|------|------|-----|

[녹취]
<녹음본>: %s
`

const agendaTemplate = `%s
[작업]
아래 회의 목적/배경으로 60분 안건과 진행 순서를 제안하라.

[출력 형식 — 반드시 준수]
# 60분 회의 안건(Agenda)
## 회의 목표 (1문장)
- …
## 타임테이블
| 순서 | 안건 | 목적 | 예상시간 | 진행 방식(설명/토론/결정) | 산출물 | Decision Point |
|-----|------|------|---------|--------------------------|--------|----------------|
| 1 | … | … | 5m | … | … | Y/N |
## 사전 준비(Pre-read)
- …
## 회의 진행 룰(권장)
- 시간 초과 시 컷오프 기준:
- 의사결정 기준:
- 주차(Parking lot) 규칙:

[회의 목적/배경]
<회의 목적/배경>: %s
`

const inviteTemplate = `%s
[작업]
아래 회의 정보를 바탕으로 캘린더 초대 설명 문구를 작성하라.

[출력 형식 — 반드시 준수]
[회의 목적]
- …
[주요 안건]
- 1) …
[참여자]
- …
[소요 시간]
- …
[회의 장소/접속]
- …
[사전 준비/자료]
- …
[회의에서 결정할 것]
- …

<회의 정보>: %s
`

const followupTemplate = `%s
[작업]
아래 회의 요약으로 개인별 Follow-up 이메일을 작성하라.

[출력 형식 — 반드시 준수]
Subject: %s

안녕하세요, %s님.
1) 감사합니다
- …
2) 오늘 합의/결정된 내용 요약
- …
3) %s님의 할 일 (우선순위 순)
- [ ] … (마감: …)
4) 전체 액션아이템(참고)
- …
5) 다음 일정
- 다음 회의: …
- 필요 시: …
6) 참고 링크/회의록
- 회의록(Google Doc): %s
- 기타: %s

감사합니다.
%s

<회의 요약>: %s
`
