// Package reporting 통합 문서 두 개로 보고서를 만드는 흐름을 묶는다.
package reporting

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"rosterboard/internal/model"
	"rosterboard/internal/report"
	"rosterboard/internal/service/excel"
)

// ErrNoMatch 패턴에 맞는 파일 없음
var ErrNoMatch = errors.New("no file matches pattern")

// Sheets 읽을 시트 이름 (빈 문자열이면 첫 시트)
type Sheets struct {
	Criteria string
	Roster   string
}

// Generator 기준표와 발령 데이터 통합 문서로 보고서 생성
type Generator struct {
	builder *report.Builder
	sheets  Sheets
	logger  *zap.Logger
}

// NewGenerator 생성
func NewGenerator(opts report.Options, sheets Sheets, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		builder: report.NewBuilder(opts, logger),
		sheets:  sheets,
		logger:  logger,
	}
}

// FromWorkbooks 열린 통합 문서로 보고서 생성. 기준일은 발령 데이터 파일명에서 얻는다.
func (g *Generator) FromWorkbooks(criteria, data *excel.Workbook) (*model.Report, error) {
	criteriaRows, err := criteria.Rows(g.sheets.Criteria)
	if err != nil {
		return nil, fmt.Errorf("read criteria %s: %w", criteria.Name(), err)
	}
	rosterRows, err := data.Rows(g.sheets.Roster)
	if err != nil {
		return nil, fmt.Errorf("read data %s: %w", data.Name(), err)
	}

	g.logger.Debug("workbooks loaded",
		zap.String("criteria", criteria.Name()),
		zap.Int("criteria_rows", len(criteriaRows)),
		zap.String("data", data.Name()),
		zap.Int("data_rows", len(rosterRows)))

	return g.builder.Build(report.Input{
		Criteria: criteriaRows,
		Roster:   rosterRows,
		Filename: data.Name(),
		Date1904: data.Date1904(),
	})
}

// FromFiles 경로로 보고서 생성
func (g *Generator) FromFiles(criteriaPath, dataPath string) (*model.Report, error) {
	criteria, err := excel.Open(criteriaPath)
	if err != nil {
		return nil, err
	}
	defer criteria.Close()

	data, err := excel.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer data.Close()

	return g.FromWorkbooks(criteria, data)
}

// LatestMatch 글롭 패턴에 맞는 파일 중 이름순 마지막 (날짜가 붙은 내보내기 파일의 최신본)
func LatestMatch(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}
