// Package matcher 기준 보직명과 발령직위를 대조한다.
package matcher

import (
	"strings"

	"rosterboard/internal/parser"
)

// 유사도 점수
const (
	ScoreExact     = 1.0 // 정규화 후 동일
	ScoreContained = 0.9 // 발령직위가 기준 보직명을 포함
	ScoreContains  = 0.8 // 기준 보직명이 발령직위를 포함
	ScoreNone      = 0.0

	// AcceptThreshold 이 값을 초과해야 유사도 매칭으로 인정
	AcceptThreshold = 0.8
)

// Similarity 두 보직명의 포함 관계 점수. 방향에 따라 값이 다르다:
// b 가 a 를 포함하면 0.9, a 가 b 를 포함하면 0.8.
func Similarity(a, b string) float64 {
	na := parser.Normalize(a)
	nb := parser.Normalize(b)

	switch {
	case na == nb:
		return ScoreExact
	case strings.Contains(nb, na):
		return ScoreContained
	case strings.Contains(na, nb):
		return ScoreContains
	default:
		return ScoreNone
	}
}
