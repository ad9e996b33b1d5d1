package model

import (
	"strconv"
	"strings"
)

// CellKind 셀 값 종류
type CellKind int

const (
	CellEmpty  CellKind = iota // 빈 셀
	CellText                   // 문자열
	CellNumber                 // 숫자 (날짜 일련번호 포함)
)

// Cell 스프레드시트 셀 하나의 값
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row 한 행의 셀 목록
type Row []Cell

// Text 문자열 셀 생성
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// Number 숫자 셀 생성
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// IsEmpty 빈 셀 여부
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellText:
		return c.Text == ""
	case CellNumber:
		return false
	default:
		return true
	}
}

// String 표시용 문자열 (숫자는 불필요한 소수점 없이)
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// At 범위를 벗어나면 빈 셀을 돌려준다
func (r Row) At(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return Cell{}
	}
	return r[idx]
}

// TextAt idx 위치 셀의 앞뒤 공백 제거 문자열
func (r Row) TextAt(idx int) string {
	return strings.TrimSpace(r.At(idx).String())
}

// TextRow 문자열 목록으로 행 생성 (테스트/JSON 입력용)
func TextRow(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}
