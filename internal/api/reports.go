package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rosterboard/internal/model"
	"rosterboard/internal/parser"
	"rosterboard/internal/publish"
	"rosterboard/internal/report"
	"rosterboard/internal/service/excel"
)

// CreateReport 업로드한 기준표와 발령 데이터로 보고서 생성
// POST /api/reports (multipart: criteria, data, publish)
func (h *Handler) CreateReport(c *gin.Context) {
	criteriaHeader, err := c.FormFile("criteria")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "기준표 파일(criteria)이 없습니다"})
		return
	}
	dataHeader, err := c.FormFile("data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "데이터 파일(data)이 없습니다"})
		return
	}

	criteria, cleanup, err := h.openUpload(c, criteriaHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanup()

	data, cleanupData, err := h.openUpload(c, dataHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer cleanupData()

	r, err := h.generator.FromWorkbooks(criteria, data)
	if err != nil {
		if errors.Is(err, parser.ErrHeaderNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.DefaultPostForm("publish", "false") == "true" {
		meta := publish.Meta{CriteriaFile: criteriaHeader.Filename, DataFile: dataHeader.Filename}
		if err := h.store.Save(r, meta); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, r)
}

// openUpload 업로드 파일을 uuid 이름으로 저장한 뒤 원래 파일명으로 연다
func (h *Handler) openUpload(c *gin.Context, fh *multipart.FileHeader) (*excel.Workbook, func(), error) {
	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		return nil, nil, err
	}
	tmp := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, tmp); err != nil {
		return nil, nil, fmt.Errorf("파일 저장 실패: %w", err)
	}

	f, err := os.Open(tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, nil, err
	}
	wb, err := excel.OpenReader(f, filepath.Base(fh.Filename))
	_ = f.Close()
	if err != nil {
		_ = os.Remove(tmp)
		return nil, nil, err
	}

	h.logger.Debug("upload stored", zap.String("file", fh.Filename), zap.String("tmp", tmp))
	return wb, func() {
		_ = wb.Close()
		_ = os.Remove(tmp)
	}, nil
}

// currentReport 게시본이 없으면 404 를 쓰고 false
func (h *Handler) currentReport(c *gin.Context) (*model.Report, bool) {
	r, _, err := h.store.Current()
	if errors.Is(err, publish.ErrNotPublished) {
		c.JSON(http.StatusNotFound, gin.H{"error": "게시된 보고서가 없습니다"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return r, true
}

// GetReport 게시본 조회
// GET /api/report
func (h *Handler) GetReport(c *gin.Context) {
	r, ok := h.currentReport(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.EncodeJSON(c.Writer, r); err != nil {
		h.logger.Warn("write report failed", zap.Error(err))
	}
}

// PutReport 편집한 보고서 JSON 으로 게시본 교체
// PUT /api/report
func (h *Handler) PutReport(c *gin.Context) {
	r, err := report.DecodeJSON(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Save(r, publish.Meta{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"published": true, "rows": len(r.Entries())})
}

// GetHierarchy 구분 → 보직 → 보직자 트리 (?format=yaml 지원)
// GET /api/report/hierarchy
func (h *Handler) GetHierarchy(c *gin.Context) {
	r, ok := h.currentReport(c)
	if !ok {
		return
	}
	nodes := report.BuildHierarchy(r)

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, nodes)
	case "yaml", "yml":
		c.Header("Content-Type", "application/yaml; charset=utf-8")
		c.Status(http.StatusOK)
		if err := report.EncodeHierarchy(c.Writer, nodes, format); err != nil {
			h.logger.Warn("write hierarchy failed", zap.Error(err))
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "지원하지 않는 형식: " + format})
	}
}

// GetConcurrent 겸직자 요약
// GET /api/report/concurrent
func (h *Handler) GetConcurrent(c *gin.Context) {
	r, ok := h.currentReport(c)
	if !ok {
		return
	}
	entries := r.Entries()
	c.JSON(http.StatusOK, gin.H{
		"summary": report.Summarize(entries),
		"holders": report.ConcurrentHolders(entries),
	})
}
