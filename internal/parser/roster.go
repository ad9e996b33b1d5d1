package parser

import (
	"rosterboard/internal/model"
)

// RosterFilter 발령사항 현황에서 현재 재직 중인 발령만 추린다
type RosterFilter struct {
	layout RosterLayout
	dates  DateFormatter
}

// NewRosterFilter 필터 생성
func NewRosterFilter(layout RosterLayout, dates DateFormatter) *RosterFilter {
	if layout.HeaderScanRows <= 0 {
		layout.HeaderScanRows = DefaultRosterLayout().HeaderScanRows
	}
	if layout.NameColumn == "" {
		layout.NameColumn = layout.Marker
	}
	return &RosterFilter{layout: layout, dates: dates}
}

// ExtractActive 기본 헤더 이름으로 추출
func ExtractActive(rows []model.Row) ([]model.ActiveAppointment, error) {
	return NewRosterFilter(DefaultRosterLayout(), DateFormatter{}).ExtractActive(rows)
}

// LocateHeader 앞쪽 행에서 표식 셀(예: "성명")이 있는 헤더 행을 찾는다
func (f *RosterFilter) LocateHeader(rows []model.Row) (int, error) {
	limit := min(f.layout.HeaderScanRows, len(rows))
	for i := 0; i < limit; i++ {
		for j := range rows[i] {
			if rows[i].TextAt(j) == f.layout.Marker {
				return i, nil
			}
		}
	}
	return -1, &HeaderNotFoundError{Marker: f.layout.Marker, ScannedRows: limit}
}

// ResolveColumns 헤더 행에서 각 열 위치를 찾는다
func (f *RosterFilter) ResolveColumns(rows []model.Row, headerRow int) RosterColumns {
	header := make([]string, len(rows[headerRow]))
	for i := range header {
		header[i] = rows[headerRow].TextAt(i)
	}
	return RosterColumns{
		HeaderRow: headerRow,
		Name:      IndexOf(header, f.layout.NameColumn),
		Position:  IndexOf(header, f.layout.PositionColumn),
		Start:     IndexOf(header, f.layout.StartColumn),
		End:       IndexOf(header, f.layout.EndColumn),
		Status:    IndexOf(header, f.layout.StatusColumn),
	}
}

// ExtractActive 헤더 아래 행 중 성명·발령직위가 있고 발령상태가 재직/유지인 행만 돌려준다.
// 발령상태 열이 없으면 모든 행을 재직으로 본다.
func (f *RosterFilter) ExtractActive(rows []model.Row) ([]model.ActiveAppointment, error) {
	headerRow, err := f.LocateHeader(rows)
	if err != nil {
		return nil, err
	}
	cols := f.ResolveColumns(rows, headerRow)
	return f.collect(rows, cols), nil
}

func (f *RosterFilter) collect(rows []model.Row, cols RosterColumns) []model.ActiveAppointment {
	var out []model.ActiveAppointment
	for i := cols.HeaderRow + 1; i < len(rows); i++ {
		row := rows[i]

		name := row.TextAt(cols.Name)
		position := row.TextAt(cols.Position)
		if name == "" || position == "" {
			continue
		}

		if cols.Status >= 0 {
			status := row.TextAt(cols.Status)
			if status != "" && !ContainsAny(status, f.layout.ActiveStatuses) {
				continue
			}
		}

		out = append(out, model.ActiveAppointment{
			Name:     name,
			Position: position,
			Period:   f.dates.Format(row.At(cols.Start)) + " ~ " + f.dates.Format(row.At(cols.End)),
		})
	}
	return out
}
