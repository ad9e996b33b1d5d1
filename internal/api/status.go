package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rosterboard/internal/publish"
)

// StatusResponse 게시 상태
type StatusResponse struct {
	Published    bool       `json:"published"`
	Title        string     `json:"title,omitempty"`
	Date         string     `json:"date,omitempty"`
	Rows         int        `json:"rows"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	CriteriaFile string     `json:"criteriaFile,omitempty"`
	DataFile     string     `json:"dataFile,omitempty"`
}

// GetStatus 게시 상태 조회
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	r, meta, err := h.store.Current()
	if errors.Is(err, publish.ErrNotPublished) {
		c.JSON(http.StatusOK, StatusResponse{Published: false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	publishedAt := meta.PublishedAt
	c.JSON(http.StatusOK, StatusResponse{
		Published:    true,
		Title:        r.Title,
		Date:         r.Date,
		Rows:         meta.Rows,
		PublishedAt:  &publishedAt,
		CriteriaFile: meta.CriteriaFile,
		DataFile:     meta.DataFile,
	})
}
