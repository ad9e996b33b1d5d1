package report

import (
	"sort"

	"rosterboard/internal/model"
)

// OccurrenceIndex 성명별 보직 수 (겸직 표시용)
func OccurrenceIndex(rows []model.ReportRow) map[string]int {
	index := make(map[string]int)
	for _, r := range rows {
		if r.Name == "" {
			continue
		}
		index[r.Name]++
	}
	return index
}

// ConcurrentHolder 두 개 이상의 보직을 맡은 사람
type ConcurrentHolder struct {
	Name      string   `json:"name"`
	Count     int      `json:"count"`
	Positions []string `json:"positions"`
}

// ConcurrentHolders 겸직자 목록. 보직 수 내림차순, 같으면 먼저 나온 순.
func ConcurrentHolders(rows []model.ReportRow) []ConcurrentHolder {
	var order []string
	positions := make(map[string][]string)
	for _, r := range rows {
		if r.Name == "" {
			continue
		}
		if _, ok := positions[r.Name]; !ok {
			order = append(order, r.Name)
		}
		positions[r.Name] = append(positions[r.Name], r.Position)
	}

	out := make([]ConcurrentHolder, 0)
	for _, name := range order {
		if len(positions[name]) < 2 {
			continue
		}
		out = append(out, ConcurrentHolder{
			Name:      name,
			Count:     len(positions[name]),
			Positions: positions[name],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Summary 매칭 통계
type Summary struct {
	Positions  int `json:"positions"`
	Matched    int `json:"matched"`
	Unmatched  int `json:"unmatched"`
	Concurrent int `json:"concurrent"`
}

// Summarize 보직 수 / 매칭 수 / 겸직자 수
func Summarize(rows []model.ReportRow) Summary {
	s := Summary{Positions: len(rows)}
	for _, r := range rows {
		if r.Name != "" {
			s.Matched++
		}
	}
	s.Unmatched = s.Positions - s.Matched
	for _, n := range OccurrenceIndex(rows) {
		if n > 1 {
			s.Concurrent++
		}
	}
	return s
}
