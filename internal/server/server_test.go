package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rosterboard/internal/config"
	"rosterboard/internal/model"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	s, err := NewServer(cfg, nil)
	require.NoError(t, err)
	return s
}

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

var criteriaRows = [][]interface{}{
	{"", "구분", "", "", "보직명"},
	{"", "본부", "", "", "총장"},
	{"", "", "", "", "기획처장"},
	{"", "대학", "", "", "문과대학장"},
}

var rosterRows = [][]interface{}{
	{"성명", "발령직위", "발령시작일", "발령종료일", "발령상태"},
	{"홍길동", "총장", "20240301", "20280228", "재직"},
	{"홍길동", "기획처장", "20250301", "20270228", "재직"},
	{"이영희", "문과대학장", "20250301", "20270228", ""},
}

func uploadRequest(t *testing.T, criteria, data []byte, dataName string, publish bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, file := range map[string]struct {
		name    string
		content []byte
	}{
		"criteria": {"criteria.xlsx", criteria},
		"data":     {dataName, data},
	} {
		part, err := w.CreateFormFile(field, file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	if publish {
		require.NoError(t, w.WriteField("publish", "true"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reports", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestReportLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := do(s, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"published":false,"rows":0}`, w.Body.String())

	req := uploadRequest(t, workbookBytes(t, criteriaRows), workbookBytes(t, rosterRows), "발령_20251015.xlsx", true)
	w = do(s, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var created model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "(2025.10.15. 현재)", created.Date)
	entries := created.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "본부", entries[1].Category)
	assert.Equal(t, "이영희", entries[2].Name)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, true, status["published"])
	assert.Equal(t, float64(3), status["rows"])
	assert.Equal(t, "발령_20251015.xlsx", status["dataFile"])

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var published model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	assert.Equal(t, created, published)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/concurrent", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"홍길동","count":2`)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/hierarchy?format=yaml", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "label: 본부")

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/hierarchy", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var nodes []*model.Node
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nodes))
	require.Len(t, nodes, 2)
	assert.Equal(t, "대학", nodes[1].Label)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/hierarchy?format=xml", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/xlsx", nil))
	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	title, err := f.GetCellValue(f.GetSheetName(0), "A1")
	require.NoError(t, err)
	assert.Equal(t, created.Title, title)
}

func TestDownloadXLSXLogsProgress(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)
	s, err := NewServer(cfg, zap.New(core))
	require.NoError(t, err)

	w := do(s, uploadRequest(t, workbookBytes(t, criteriaRows), workbookBytes(t, rosterRows), "발령_20251015.xlsx", true))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report/xlsx", nil))
	require.Equal(t, http.StatusOK, w.Code)

	exported := logs.FilterMessage("xlsx export").AllUntimed()
	require.Len(t, exported, 4)
	assert.Equal(t, "export", exported[0].LoggerName)
	assert.Equal(t, "done", exported[3].ContextMap()["stage"])
}

func TestCreateReportHeaderNotFound(t *testing.T) {
	s := newTestServer(t)

	bad := [][]interface{}{{"이름", "직위"}, {"홍길동", "총장"}}
	w := do(s, uploadRequest(t, workbookBytes(t, criteriaRows), workbookBytes(t, bad), "data.xlsx", false))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "성명")

	// publish 하지 않았으므로 게시본 없음
	w = do(s, httptest.NewRequest(http.MethodGet, "/api/report", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReportBadUpload(t *testing.T) {
	s := newTestServer(t)

	w := do(s, uploadRequest(t, []byte("not a workbook"), workbookBytes(t, rosterRows), "data.xlsx", false))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(""))
	w = do(s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPutReport(t *testing.T) {
	s := newTestServer(t)

	w := do(s, httptest.NewRequest(http.MethodPut, "/api/report", strings.NewReader(`{"title":`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := `{"title":"교 원 보 직 자 현 황 (2025.11.01.)","date":"(2025.11.01. 현재)",
	"headers":{"left":["구분","보 직 명","성 명","기 간"],"right":["구분","보 직 명","성 명","기 간"]},
	"rows":[{"left":{"category":"본부","position":"총장","name":"홍길동","period":""},
	"right":{"category":"","position":"","name":"","period":""}}]}`
	w = do(s, httptest.NewRequest(http.MethodPut, "/api/report", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"published":true,"rows":1}`, w.Body.String())

	r, _, err := s.GetStore().Current()
	require.NoError(t, err)
	assert.Equal(t, "교 원 보 직 자 현 황 (2025.11.01.)", r.Title)
}

func TestCORSAndIndex(t *testing.T) {
	s := newTestServer(t)

	w := do(s, httptest.NewRequest(http.MethodOptions, "/api/report", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "교원 보직자 현황")

	w = do(s, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
