package parser

import (
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rosterboard/internal/model"
)

const (
	// maxExcelSerial 9999-12-31 에 해당하는 일련번호
	maxExcelSerial = 2958465
	// fakeLeapSerial 1900 체계에만 있는 1900-02-29
	fakeLeapSerial = 60
)

// excel1900Day0 1900 체계 일련번호 0 (1900-03-01 이전 구간 기준)
var excel1900Day0 = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateFormatter 발령 시작/종료일을 "YYYY.MM.DD" 로 정리
type DateFormatter struct {
	Date1904 bool // 통합 문서가 1904 날짜 체계를 쓰는 경우
}

// FormatDate 1900 날짜 체계 기준 FormatDate
func FormatDate(c model.Cell) string {
	return DateFormatter{}.Format(c)
}

// Format 숫자 셀은 날짜 일련번호로, 그 외는 숫자만 추려 8자리면 날짜로 본다.
// 해석할 수 없는 값은 숫자 문자열을 그대로 돌려준다. 숫자 0 은 빈 값이다.
func (f DateFormatter) Format(c model.Cell) string {
	if c.IsEmpty() || (c.Kind == model.CellNumber && c.Number == 0) {
		return ""
	}
	if c.Kind == model.CellNumber && !f.Date1904 && c.Number > 0 && c.Number < fakeLeapSerial+1 {
		days := int(c.Number)
		if days == fakeLeapSerial {
			return "1900.02.29"
		}
		return excel1900Day0.AddDate(0, 0, days).Format("2006.01.02")
	}
	if c.Kind == model.CellNumber && c.Number > 0 && c.Number <= maxExcelSerial && !math.IsNaN(c.Number) {
		if t, err := excelize.ExcelDateToTime(c.Number, f.Date1904); err == nil {
			return t.Format("2006.01.02")
		}
	}
	digits := DigitsOnly(strings.TrimSpace(c.String()))
	if len(digits) == 8 {
		return dotted(digits)
	}
	return digits
}
