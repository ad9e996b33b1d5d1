// Package report 기준표와 발령 데이터를 대조해 보직자 현황 보고서를 만든다.
package report

import (
	"fmt"

	"go.uber.org/zap"

	"rosterboard/internal/matcher"
	"rosterboard/internal/model"
	"rosterboard/internal/parser"
)

// DefaultFallbackDate 파일명에 날짜가 없을 때 쓰는 기준일
const DefaultFallbackDate = "2025.10.01."

// Options 보고서 생성 옵션
type Options struct {
	Criteria     parser.CriteriaLayout
	Roster       parser.RosterLayout
	FallbackDate string    // "YYYY.MM.DD." 형식
	TitleFormat  string    // %s 자리에 기준일
	DateFormat   string    // %s 자리에 기준일
	Headers      [4]string // 좌우 공통 열 제목
}

// DefaultOptions 교원 보직자 현황 기본값
func DefaultOptions() Options {
	return Options{
		Criteria:     parser.DefaultCriteriaLayout(),
		Roster:       parser.DefaultRosterLayout(),
		FallbackDate: DefaultFallbackDate,
		TitleFormat:  "교 원 보 직 자 현 황 (%s)",
		DateFormat:   "(%s 현재)",
		Headers:      [4]string{"구분", "보 직 명", "성 명", "기 간"},
	}
}

// Input 한 번의 대조에 필요한 입력
type Input struct {
	Criteria []model.Row
	Roster   []model.Row
	Filename string // 발령 데이터 파일명 (기준일 추출용)
	Date1904 bool   // 발령 데이터 통합 문서의 날짜 체계
}

// Builder 보고서 생성기. 호출 간에 상태를 공유하지 않는다.
type Builder struct {
	opts   Options
	logger *zap.Logger
}

// NewBuilder 생성기 생성 (logger 가 nil 이면 로그를 남기지 않음)
func NewBuilder(opts Options, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{opts: opts, logger: logger}
}

// BuildReport 기본 옵션으로 보고서 생성
func BuildReport(criteriaRows, rawRows []model.Row, filename string) (*model.Report, error) {
	return NewBuilder(DefaultOptions(), nil).Build(Input{
		Criteria: criteriaRows,
		Roster:   rawRows,
		Filename: filename,
	})
}

// Build 기준표의 각 보직에 재직 중인 발령을 대응시켜 2단 보고서를 만든다.
// 발령 데이터 헤더를 찾지 못하면 parser.ErrHeaderNotFound 를 그대로 반환한다.
func (b *Builder) Build(in Input) (*model.Report, error) {
	date := b.reportDate(in.Filename)

	criteria := parser.NewCriteriaExtractor(b.opts.Criteria).Extract(in.Criteria)

	filter := parser.NewRosterFilter(b.opts.Roster, parser.DateFormatter{Date1904: in.Date1904})
	active, err := filter.ExtractActive(in.Roster)
	if err != nil {
		return nil, err
	}

	rows := b.match(criteria, active)

	sum := Summarize(rows)
	b.logger.Info("report built",
		zap.String("filename", in.Filename),
		zap.String("date", date),
		zap.Int("positions", sum.Positions),
		zap.Int("active", len(active)),
		zap.Int("matched", sum.Matched),
		zap.Int("concurrent", sum.Concurrent),
	)

	return &model.Report{
		Title: fmt.Sprintf(b.opts.TitleFormat, date),
		Date:  fmt.Sprintf(b.opts.DateFormat, date),
		Headers: model.Headers{
			Left:  b.opts.Headers,
			Right: b.opts.Headers,
		},
		Rows: model.SplitColumns(rows),
	}, nil
}

func (b *Builder) match(criteria []model.CanonicalPosition, active []model.ActiveAppointment) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(criteria))
	for _, c := range criteria {
		row := model.ReportRow{
			Category: c.Category,
			Position: c.Position,
		}
		m := matcher.Resolve(c.Position, active)
		if m.Kind != matcher.MatchNone {
			row.Name = m.Appointment.Name
			row.Period = m.Appointment.Period
		} else if c.Position != "" {
			b.logger.Debug("position unmatched",
				zap.String("category", c.Category),
				zap.String("position", c.Position),
				zap.Int("row", c.SourceRowIndex),
			)
		}
		if m.Kind == matcher.MatchSimilar {
			b.logger.Debug("position matched by similarity",
				zap.String("position", c.Position),
				zap.String("roster_position", m.Appointment.Position),
				zap.Float64("score", m.Score),
			)
		}
		rows = append(rows, row)
	}
	return rows
}

func (b *Builder) reportDate(filename string) string {
	if d, ok := parser.ExtractReportDate(filename); ok {
		return d
	}
	if b.opts.FallbackDate != "" {
		return b.opts.FallbackDate
	}
	return DefaultFallbackDate
}
