package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reDateStamp = regexp.MustCompile(`\d{8}`)

// Normalize 비교용 정규화: NFC 로 합친 뒤 모든 공백 문자를 제거한다.
// 표시에는 사용하지 않는다.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

// DigitsOnly 숫자가 아닌 문자를 모두 제거
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dotted "YYYYMMDD" -> "YYYY.MM.DD"
func dotted(d string) string {
	return d[0:4] + "." + d[4:6] + "." + d[6:8]
}

// ExtractReportDate 파일명에서 처음 나오는 8자리 숫자를 "YYYY.MM.DD." 형식으로 추출
// 예: "교원_발령사항_현황_20251001_093000.xlsx" -> "2025.10.01."
func ExtractReportDate(filename string) (string, bool) {
	m := reDateStamp.FindString(filename)
	if m == "" {
		return "", false
	}
	return dotted(m) + ".", true
}

// ContainsAny 문자열이 키워드 중 하나라도 포함하는지 검사
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// IndexOf 헤더 행에서 열 이름의 위치 (없으면 -1)
func IndexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
