package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rosterboard/internal/api"
	"rosterboard/internal/config"
	"rosterboard/internal/logging"
	"rosterboard/internal/publish"
	"rosterboard/internal/service/reporting"
)

//go:embed web
var staticFiles embed.FS

// Server HTTP 서버
type Server struct {
	router *gin.Engine
	store  *publish.Store
	api    *api.Handler
	logger *zap.Logger
}

// NewServer 서버 생성
func NewServer(cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	store, err := publish.NewStore(dataDir, cfg.Data.ReportFile, logger)
	if err != nil {
		return nil, err
	}

	generator := reporting.NewGenerator(cfg.ReportOptions(), reporting.Sheets{
		Criteria: cfg.Criteria.Sheet,
		Roster:   cfg.Roster.Sheet,
	}, logger)

	s := &Server{
		router: gin.New(),
		store:  store,
		api:    api.NewHandler(generator, store, filepath.Join(dataDir, "uploads"), logger),
		logger: logger,
	}
	s.setupRoutes()
	return s, nil
}

// setupRoutes 라우트 설정
func (s *Server) setupRoutes() {
	s.router.Use(requestID(), logging.GinLogger(s.logger), logging.GinRecovery(s.logger))

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 보기 화면
	sub, _ := fs.Sub(staticFiles, "web")
	index := func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", index)
	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		index(c)
	})
}

// requestID 요청마다 uuid 를 붙인다
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logging.RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Handler 테스트용 http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	s.logger.Info("server listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

// GetStore 게시 저장소 (테스트용)
func (s *Server) GetStore() *publish.Store {
	return s.store
}
