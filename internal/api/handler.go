// Package api 보고서 생성과 게시 HTTP API
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rosterboard/internal/exporter"
	"rosterboard/internal/publish"
	"rosterboard/internal/service/reporting"
)

// Handler API 처리기
type Handler struct {
	generator *reporting.Generator
	store     *publish.Store
	exporter  *exporter.Exporter
	uploadDir string
	logger    *zap.Logger
}

// NewHandler 생성 (uploadDir 는 업로드 파일 임시 저장 위치)
func NewHandler(generator *reporting.Generator, store *publish.Store, uploadDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		generator: generator,
		store:     store,
		exporter: exporter.NewExporter(exporter.Options{
			MarkConcurrent: true,
			Progress:       exporter.LogProgress(logger.Named("export")),
		}),
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// RegisterRoutes 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// 생성
	router.POST("/reports", h.CreateReport)

	// 게시본
	router.GET("/report", h.GetReport)
	router.PUT("/report", h.PutReport)
	router.GET("/report/hierarchy", h.GetHierarchy)
	router.GET("/report/concurrent", h.GetConcurrent)
	router.GET("/report/xlsx", h.DownloadXLSX)
}
