package parser

import "rosterboard/internal/model"

// CriteriaExtractor 기준표(구분 및 보직명 기준)에서 보직 목록 추출
type CriteriaExtractor struct {
	layout CriteriaLayout
}

// NewCriteriaExtractor 추출기 생성
func NewCriteriaExtractor(layout CriteriaLayout) *CriteriaExtractor {
	if layout.HeaderRows < 0 {
		layout.HeaderRows = 0
	}
	return &CriteriaExtractor{layout: layout}
}

// ExtractCriteria 기본 배치로 추출
func ExtractCriteria(rows []model.Row) []model.CanonicalPosition {
	return NewCriteriaExtractor(DefaultCriteriaLayout()).Extract(rows)
}

// Extract 헤더 이후 행 중 구분 또는 보직명이 있는 행을 원래 순서대로 돌려준다.
// 구분이 비어 있으면 위쪽에서 마지막으로 나온 구분을 채운다.
func (e *CriteriaExtractor) Extract(rows []model.Row) []model.CanonicalPosition {
	minCells := e.layout.MinCells()

	var out []model.CanonicalPosition
	for i := e.layout.HeaderRows; i < len(rows); i++ {
		row := rows[i]
		if len(row) < minCells {
			continue
		}
		category := row.TextAt(e.layout.CategoryColumn)
		position := row.TextAt(e.layout.PositionColumn)
		if category == "" && position == "" {
			continue
		}
		out = append(out, model.CanonicalPosition{
			Category:       category,
			Position:       position,
			SourceRowIndex: i,
		})
	}

	fillDownCategory(out)
	return out
}

// fillDownCategory 첫 구분 이전의 행은 빈 구분으로 남는다
func fillDownCategory(items []model.CanonicalPosition) {
	current := ""
	for i := range items {
		if items[i].Category != "" {
			current = items[i].Category
			continue
		}
		items[i].Category = current
	}
}
