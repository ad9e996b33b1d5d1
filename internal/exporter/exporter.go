// Package exporter 보직자 현황 보고서를 xlsx 문서로 내보낸다.
package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"rosterboard/internal/model"
	"rosterboard/internal/report"
)

// SheetName 출력 시트 이름
const SheetName = "보직자현황"

const (
	titleRow      = 1
	dateRow       = 2
	headerRow     = 3
	firstDataRow  = 4
	leftFirstCol  = 1 // A
	gapCol        = 5 // E
	rightFirstCol = 6 // F
	lastCol       = 9 // I
)

// Options 내보내기 옵션
type Options struct {
	// MarkConcurrent 겸직자 이름 뒤에 ⭐n 표시
	MarkConcurrent bool
	Progress       func(ProgressEvent)
}

// Exporter 2단 보고서 xlsx 작성기
type Exporter struct {
	opts Options
}

// NewExporter 생성
func NewExporter(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

type styles struct {
	title    int
	date     int
	header   int
	category int
	body     int
}

// Export 보고서를 새 통합 문서로 작성
func (e *Exporter) Export(r *model.Report) (*excelize.File, error) {
	if err := report.Validate(r); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	st, err := newStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(e.opts.Progress, 10, "header")
	if err := writeHeader(f, r, st); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(e.opts.Progress, 30, "rows")
	var counts map[string]int
	if e.opts.MarkConcurrent {
		counts = report.OccurrenceIndex(r.Entries())
	}
	if err := e.writeRows(f, r, st, counts); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(e.opts.Progress, 80, "merge")
	if err := mergeCategories(f, r, leftFirstCol, func(p model.RowPair) string { return p.Left.Category }); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := mergeCategories(f, r, rightFirstCol, func(p model.RowPair) string { return p.Right.Category }); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := setLayout(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	reportProgress(e.opts.Progress, 100, "done")
	f.SetActiveSheet(0)
	return f, nil
}

// Write 보고서를 w 에 xlsx 로 기록
func (e *Exporter) Write(w io.Writer, r *model.Report) error {
	f, err := e.Export(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	var st styles
	var err error
	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.date, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return st, err
	}
	if st.category, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    border,
		Alignment: center,
	}); err != nil {
		return st, err
	}
	if st.body, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: center,
	}); err != nil {
		return st, err
	}
	return st, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeHeader(f *excelize.File, r *model.Report, st styles) error {
	first, last := cellName(leftFirstCol, titleRow), cellName(lastCol, titleRow)
	if err := f.SetCellValue(SheetName, first, r.Title); err != nil {
		return err
	}
	if err := f.MergeCell(SheetName, first, last); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, first, last, st.title); err != nil {
		return err
	}

	first, last = cellName(leftFirstCol, dateRow), cellName(lastCol, dateRow)
	if err := f.SetCellValue(SheetName, first, r.Date); err != nil {
		return err
	}
	if err := f.MergeCell(SheetName, first, last); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, first, last, st.date); err != nil {
		return err
	}

	for i := 0; i < 4; i++ {
		if err := f.SetCellValue(SheetName, cellName(leftFirstCol+i, headerRow), r.Headers.Left[i]); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cellName(rightFirstCol+i, headerRow), r.Headers.Right[i]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, cellName(leftFirstCol, headerRow), cellName(gapCol-1, headerRow), st.header); err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, cellName(rightFirstCol, headerRow), cellName(lastCol, headerRow), st.header)
}

func (e *Exporter) writeRows(f *excelize.File, r *model.Report, st styles, counts map[string]int) error {
	for i, pair := range r.Rows {
		row := firstDataRow + i
		if err := writeSide(f, row, leftFirstCol, pair.Left, st, counts); err != nil {
			return err
		}
		if err := writeSide(f, row, rightFirstCol, pair.Right, st, counts); err != nil {
			return err
		}
	}
	return nil
}

func writeSide(f *excelize.File, row, col int, rr model.ReportRow, st styles, counts map[string]int) error {
	values := []string{rr.Category, rr.Position, displayName(rr.Name, counts), rr.Period}
	for i, v := range values {
		if err := f.SetCellValue(SheetName, cellName(col+i, row), v); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, cellName(col, row), cellName(col, row), st.category); err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, cellName(col+1, row), cellName(col+3, row), st.body)
}

// displayName 겸직자는 "이름 ⭐n"
func displayName(name string, counts map[string]int) string {
	if name == "" || counts == nil {
		return name
	}
	if n := counts[name]; n > 1 {
		return fmt.Sprintf("%s ⭐%d", name, n)
	}
	return name
}

// mergeCategories 같은 구분이 연속된 행의 구분 셀을 세로로 병합
func mergeCategories(f *excelize.File, r *model.Report, col int, category func(model.RowPair) string) error {
	for _, span := range CategorySpans(r.Rows, category) {
		if span.Count < 2 {
			continue
		}
		top := cellName(col, firstDataRow+span.Start)
		bottom := cellName(col, firstDataRow+span.Start+span.Count-1)
		if err := f.MergeCell(SheetName, top, bottom); err != nil {
			return fmt.Errorf("merge %s:%s: %w", top, bottom, err)
		}
	}
	return nil
}

// Span 연속된 같은 구분 구간 (Start 는 Rows 인덱스)
type Span struct {
	Category string
	Start    int
	Count    int
}

// CategorySpans 빈 구분은 구간을 끊는다
func CategorySpans(rows []model.RowPair, category func(model.RowPair) string) []Span {
	var spans []Span
	for i, p := range rows {
		c := strings.TrimSpace(category(p))
		if c == "" {
			continue
		}
		if n := len(spans); n > 0 {
			last := &spans[n-1]
			if last.Category == c && last.Start+last.Count == i {
				last.Count++
				continue
			}
		}
		spans = append(spans, Span{Category: c, Start: i, Count: 1})
	}
	return spans
}

func setLayout(f *excelize.File) error {
	widths := []struct {
		from, to string
		width    float64
	}{
		{"A", "A", 14}, {"B", "B", 26}, {"C", "C", 14}, {"D", "D", 26},
		{"E", "E", 2},
		{"F", "F", 14}, {"G", "G", 26}, {"H", "H", 14}, {"I", "I", 26},
	}
	for _, w := range widths {
		if err := f.SetColWidth(SheetName, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return f.SetRowHeight(SheetName, titleRow, 30)
}
