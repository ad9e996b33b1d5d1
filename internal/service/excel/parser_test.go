package excel_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rosterboard/internal/model"
	"rosterboard/internal/service/excel"
)

func buildRosterWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]interface{}{
		{"발령사항 현황"},
		{"성명", "발령직위", "발령시작일", "발령종료일", "발령상태"},
		{"홍길동", "총장", 45352, "20280228", "재직"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	return wb
}

func reopen(t *testing.T, wb *excelize.File, name string) *excel.Workbook {
	t.Helper()

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	out, err := excel.OpenReader(bytes.NewReader(buf.Bytes()), name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func TestRowsKeepCellKinds(t *testing.T) {
	wb := reopen(t, buildRosterWorkbook(t), "발령사항_20251015.xlsx")

	rows, err := wb.Rows("")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, model.Text("발령사항 현황"), rows[0].At(0))
	assert.Equal(t, "성명", rows[1].TextAt(0))

	data := rows[2]
	assert.Equal(t, model.CellText, data.At(0).Kind)
	assert.Equal(t, model.Number(45352), data.At(2))
	// 숫자처럼 보이는 문자열 셀은 문자열로 남는다
	assert.Equal(t, model.Text("20280228"), data.At(3))
	assert.Equal(t, "발령사항_20251015.xlsx", wb.Name())
}

func TestRowsNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("rule")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("rule", "B2", "총장실"))

	wb := reopen(t, f, "criteria.xlsx")

	rows, err := wb.Rows("rule")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "총장실", rows[1].TextAt(1))
	assert.True(t, rows[1].At(0).IsEmpty())

	_, err = wb.Rows("missing")
	require.Error(t, err)

	sheets, err := wb.Sheets()
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "rule", sheets[1].Name)
	assert.Equal(t, 2, sheets[1].RowCount)
}

func TestDate1904(t *testing.T) {
	f := buildRosterWorkbook(t)
	assert.False(t, reopen(t, f, "a.xlsx").Date1904())

	on := true
	require.NoError(t, f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &on}))
	assert.True(t, reopen(t, f, "b.xlsx").Date1904())
}

func TestLoadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_20251015.xlsx")
	require.NoError(t, buildRosterWorkbook(t).SaveAs(path))

	rows, date1904, err := excel.LoadRows(path, "")
	require.NoError(t, err)
	assert.False(t, date1904)
	assert.Len(t, rows, 3)

	_, _, err = excel.LoadRows(filepath.Join(t.TempDir(), "none.xlsx"), "")
	require.Error(t, err)
}
