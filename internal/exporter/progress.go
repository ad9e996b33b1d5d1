package exporter

import "go.uber.org/zap"

// ProgressEvent 내보내기 진행 상황 (UI 표시용)
type ProgressEvent struct {
	Percent int
	Stage   string
}

// LogProgress 진행 단계를 debug 로그로 남기는 Progress 콜백
func LogProgress(logger *zap.Logger, fields ...zap.Field) func(ProgressEvent) {
	if logger == nil {
		return nil
	}
	logger = logger.With(fields...)
	return func(ev ProgressEvent) {
		logger.Debug("xlsx export",
			zap.String("stage", ev.Stage),
			zap.Int("percent", ev.Percent),
		)
	}
}

func reportProgress(progress func(ProgressEvent), percent int, stage string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{
		Percent: percent,
		Stage:   stage,
	})
}
