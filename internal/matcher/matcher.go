package matcher

import (
	"rosterboard/internal/model"
	"rosterboard/internal/parser"
)

// MatchKind 어느 단계에서 매칭되었는지
type MatchKind int

const (
	MatchNone       MatchKind = iota
	MatchExact                // 문자열 그대로 일치
	MatchNormalized           // 공백 제거 후 일치
	MatchSimilar              // 포함 관계 유사도
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchNormalized:
		return "normalized"
	case MatchSimilar:
		return "similar"
	default:
		return "none"
	}
}

// Match 매칭 결과
type Match struct {
	Appointment model.ActiveAppointment
	Index       int
	Kind        MatchKind
	Score       float64
}

// FindBestMatch 기준 보직명에 해당하는 발령을 고른다
func FindBestMatch(target string, appointments []model.ActiveAppointment) (model.ActiveAppointment, bool) {
	m := Resolve(target, appointments)
	if m.Kind == MatchNone {
		return model.ActiveAppointment{}, false
	}
	return m.Appointment, true
}

// Resolve 우선순위: 완전 일치 → 정규화 일치 → 유사도 최고점(> 0.8).
// 각 단계에서 동점이면 목록 앞쪽이 우선한다.
func Resolve(target string, appointments []model.ActiveAppointment) Match {
	for i, a := range appointments {
		if a.Position == target {
			return Match{Appointment: a, Index: i, Kind: MatchExact, Score: ScoreExact}
		}
	}

	norm := parser.Normalize(target)
	for i, a := range appointments {
		if parser.Normalize(a.Position) == norm {
			return Match{Appointment: a, Index: i, Kind: MatchNormalized, Score: ScoreExact}
		}
	}

	best := -1
	bestScore := ScoreNone
	for i, a := range appointments {
		if score := Similarity(target, a.Position); score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 && bestScore > AcceptThreshold {
		return Match{Appointment: appointments[best], Index: best, Kind: MatchSimilar, Score: bestScore}
	}

	return Match{Index: -1, Kind: MatchNone, Score: bestScore}
}
