package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rosterboard/internal/model"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   model.Cell
		want string
	}{
		{"empty", model.Cell{}, ""},
		{"eight digit string", model.Text("20250101"), "2025.01.01"},
		{"dotted string", model.Text("2025.03.01"), "2025.03.01"},
		{"dashed string", model.Text("2025-03-01"), "2025.03.01"},
		{"malformed string", model.Text("2025.3.1"), "202531"},
		{"no digits", model.Text("미정"), ""},
		{"serial 2025-01-01", model.Number(45658), "2025.01.01"},
		{"serial 2025-10-01", model.Number(45931), "2025.10.01"},
		{"serial with time part", model.Number(45658.75), "2025.01.01"},
		{"numeric yyyymmdd", model.Number(20260228), "2026.02.28"},
		{"numeric zero", model.Number(0), ""},
		{"serial 1900-01-01", model.Number(1), "1900.01.01"},
		{"serial 1900-02-28", model.Number(59), "1900.02.28"},
		{"serial fake leap day", model.Number(60), "1900.02.29"},
		{"serial 1900-03-01", model.Number(61), "1900.03.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.in))
		})
	}
}

func TestDateFormatter_1904(t *testing.T) {
	t.Parallel()

	// 1904 날짜 체계는 1900 체계보다 1462일 작다
	f := DateFormatter{Date1904: true}
	assert.Equal(t, "2025.01.01", f.Format(model.Number(45658-1462)))
	assert.Equal(t, "1904.03.01", f.Format(model.Number(60)))
	assert.Equal(t, "", f.Format(model.Number(0)))
}
