package parser

import (
	"errors"
	"fmt"
)

// ErrHeaderNotFound 발령 데이터에서 헤더 행을 찾지 못함
var ErrHeaderNotFound = errors.New("roster header row not found")

// HeaderNotFoundError 헤더 표식 셀이 앞쪽 행에 없을 때 반환
type HeaderNotFoundError struct {
	Marker      string
	ScannedRows int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("데이터 파일에서 '%s' 컬럼을 찾을 수 없습니다 (앞 %d행 검사)", e.Marker, e.ScannedRows)
}

// Is errors.Is(err, ErrHeaderNotFound) 지원
func (e *HeaderNotFoundError) Is(target error) bool {
	return target == ErrHeaderNotFound
}

// CriteriaLayout 기준표 열 위치 (0 기반)
type CriteriaLayout struct {
	HeaderRows     int `json:"headerRows"`
	CategoryColumn int `json:"categoryColumn"`
	PositionColumn int `json:"positionColumn"`
}

// DefaultCriteriaLayout 기본 기준표 배치: 구분=B열, 보직명=E열
func DefaultCriteriaLayout() CriteriaLayout {
	return CriteriaLayout{
		HeaderRows:     1,
		CategoryColumn: 1,
		PositionColumn: 4,
	}
}

// MinCells 행이 유효하려면 가져야 하는 최소 셀 수
func (l CriteriaLayout) MinCells() int {
	return max(l.CategoryColumn, l.PositionColumn) + 1
}

// RosterLayout 발령 데이터 헤더 이름
type RosterLayout struct {
	Marker         string   `json:"marker"`
	HeaderScanRows int      `json:"headerScanRows"`
	NameColumn     string   `json:"nameColumn"`
	PositionColumn string   `json:"positionColumn"`
	StartColumn    string   `json:"startColumn"`
	EndColumn      string   `json:"endColumn"`
	StatusColumn   string   `json:"statusColumn"`
	ActiveStatuses []string `json:"activeStatuses"`
}

// DefaultRosterLayout 인사 시스템 발령사항 현황 기본 헤더
func DefaultRosterLayout() RosterLayout {
	return RosterLayout{
		Marker:         "성명",
		HeaderScanRows: 10,
		NameColumn:     "성명",
		PositionColumn: "발령직위",
		StartColumn:    "발령시작일",
		EndColumn:      "발령종료일",
		StatusColumn:   "발령상태",
		ActiveStatuses: []string{"재직", "유지"},
	}
}

// RosterColumns 헤더에서 찾은 열 위치 (없으면 -1)
type RosterColumns struct {
	HeaderRow int `json:"headerRow"`
	Name      int `json:"name"`
	Position  int `json:"position"`
	Start     int `json:"start"`
	End       int `json:"end"`
	Status    int `json:"status"`
}
