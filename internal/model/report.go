package model

// ReportRow 보직 하나에 대한 매칭 결과 (미매칭이면 성명/기간이 비어 있음)
type ReportRow struct {
	Category string `json:"category"`
	Position string `json:"position"`
	Name     string `json:"name"`
	Period   string `json:"period"`
}

// IsBlank 좌우 정렬용 빈 행 여부
func (r ReportRow) IsBlank() bool {
	return r == ReportRow{}
}

// Headers 좌/우 열 제목
type Headers struct {
	Left  [4]string `json:"left"`
	Right [4]string `json:"right"`
}

// RowPair 2단 배치의 한 줄. Left 와 Right 는 서로 무관한 보직이다.
type RowPair struct {
	Left  ReportRow `json:"left"`
	Right ReportRow `json:"right"`
}

// Report 보직자 현황 보고서
type Report struct {
	Title   string    `json:"title"`
	Date    string    `json:"date"`
	Headers Headers   `json:"headers"`
	Rows    []RowPair `json:"rows"`
}

// SplitColumns 평면 목록을 ceil(n/2) 에서 나누어 좌우로 묶는다
func SplitColumns(rows []ReportRow) []RowPair {
	mid := (len(rows) + 1) / 2
	pairs := make([]RowPair, mid)
	for i := 0; i < mid; i++ {
		pairs[i].Left = rows[i]
		if j := mid + i; j < len(rows) {
			pairs[i].Right = rows[j]
		}
	}
	return pairs
}

// Entries 좌우 배치 이전의 평면 목록 (왼쪽 열 전체, 이어서 오른쪽 열)
//
// 기준표의 행은 구분 또는 보직명 중 하나는 항상 채워져 있으므로
// 오른쪽 열의 빈 행은 패딩으로 간주한다.
func (r *Report) Entries() []ReportRow {
	if r == nil {
		return nil
	}
	out := make([]ReportRow, 0, len(r.Rows)*2)
	for _, p := range r.Rows {
		out = append(out, p.Left)
	}
	for _, p := range r.Rows {
		if p.Right.IsBlank() {
			continue
		}
		out = append(out, p.Right)
	}
	return out
}
