package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadXLSX 게시본을 xlsx 로 내려받기
// GET /api/report/xlsx
func (h *Handler) DownloadXLSX(c *gin.Context) {
	r, ok := h.currentReport(c)
	if !ok {
		return
	}

	f, err := h.exporter.Export(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	name := "교원보직자현황.xlsx"
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", "report.xlsx", url.PathEscape(name)))
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		h.logger.Warn("write xlsx failed", zap.Error(err))
	}
}
