package excel

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rosterboard/internal/model"
)

// ErrNoSheet 통합 문서에 시트가 없음
var ErrNoSheet = errors.New("workbook has no sheets")

// SheetInfo 시트 요약
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// Workbook excelize 통합 문서를 셀 종류가 보존된 행으로 읽는다
type Workbook struct {
	file *excelize.File
	name string
}

// Open 경로의 xlsx 파일 열기
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", path, err)
	}
	return &Workbook{file: f, name: filepath.Base(path)}, nil
}

// OpenReader 업로드 스트림에서 통합 문서 열기 (name 은 원래 파일명)
func OpenReader(r io.Reader, name string) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel %s: %w", name, err)
	}
	return &Workbook{file: f, name: name}, nil
}

// FromFile 이미 열린 excelize 문서를 감싼다
func FromFile(f *excelize.File, name string) *Workbook {
	return &Workbook{file: f, name: name}
}

// Name 원래 파일명
func (w *Workbook) Name() string { return w.name }

// Close 문서 닫기
func (w *Workbook) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Date1904 1904 날짜 체계 사용 여부
func (w *Workbook) Date1904() bool {
	props, err := w.file.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

// Sheets 시트 목록과 행 수
func (w *Workbook) Sheets() ([]SheetInfo, error) {
	names := w.file.GetSheetList()
	result := make([]SheetInfo, 0, len(names))
	for _, name := range names {
		rows, err := w.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, SheetInfo{Name: name, RowCount: len(rows)})
	}
	return result, nil
}

// resolveSheet 빈 이름이면 첫 번째 시트
func (w *Workbook) resolveSheet(sheet string) (string, error) {
	names := w.file.GetSheetList()
	if len(names) == 0 {
		return "", ErrNoSheet
	}
	if sheet == "" {
		return names[0], nil
	}
	for _, name := range names {
		if name == sheet {
			return name, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found in %s", sheet, w.name)
}

// Rows 시트를 셀 종류가 있는 행 목록으로 읽는다 (sheet 가 빈 문자열이면 첫 시트).
// 표시 형식을 적용하지 않은 원시 값을 읽으므로 날짜 셀은 일련번호 숫자로 남는다.
func (w *Workbook) Rows(sheet string) ([]model.Row, error) {
	name, err := w.resolveSheet(sheet)
	if err != nil {
		return nil, err
	}

	raw, err := w.file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	rows := make([]model.Row, len(raw))
	for r, values := range raw {
		row := make(model.Row, len(values))
		for c, v := range values {
			if v == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				row[c] = model.Text(v)
				continue
			}
			typ, err := w.file.GetCellType(name, axis)
			if err != nil {
				row[c] = model.Text(v)
				continue
			}
			row[c] = typedCell(typ, v)
		}
		rows[r] = row
	}
	return rows, nil
}

// typedCell excelize 셀 종류에 맞춰 값 변환
func typedCell(typ excelize.CellType, v string) model.Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return model.Text(v)
	case excelize.CellTypeDate:
		if t, ok := parseISODate(v); ok {
			return model.Text(t.Format("20060102"))
		}
		return model.Text(v)
	default:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return model.Number(f)
		}
		return model.Text(v)
	}
}

func parseISODate(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadRows 파일 하나의 시트를 읽고 날짜 체계까지 돌려준다
func LoadRows(path, sheet string) ([]model.Row, bool, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, false, err
	}
	defer wb.Close()

	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, false, err
	}
	return rows, wb.Date1904(), nil
}
