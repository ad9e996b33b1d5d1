// Package publish 게시된 보고서를 데이터 디렉터리의 JSON 문서로 보관한다.
package publish

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"rosterboard/internal/model"
	"rosterboard/internal/report"
)

// ErrNotPublished 게시된 보고서 없음
var ErrNotPublished = errors.New("no report published")

// Meta 게시 정보 (보고서 파일 옆 .meta.json)
type Meta struct {
	PublishedAt  time.Time `json:"publishedAt"`
	CriteriaFile string    `json:"criteriaFile,omitempty"`
	DataFile     string    `json:"dataFile,omitempty"`
	Rows         int       `json:"rows"`
}

// Store 현재 게시본을 메모리와 디스크에 유지
type Store struct {
	dir    string
	file   string
	logger *zap.Logger

	mu      sync.RWMutex
	current *model.Report
	meta    Meta
}

// NewStore dataDir/fileName 의 기존 게시본이 있으면 읽어 온다
func NewStore(dataDir, fileName string, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(dataDir) == "" {
		return nil, errors.New("dataDir is required")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, errors.New("report file name is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{dir: dataDir, file: fileName, logger: logger}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path 보고서 JSON 경로
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.file)
}

func (s *Store) metaPath() string {
	return strings.TrimSuffix(s.Path(), filepath.Ext(s.file)) + ".meta.json"
}

func (s *Store) load() error {
	path := s.Path()
	if !fileExists(path) {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := report.DecodeJSON(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	var meta Meta
	if fileExists(s.metaPath()) {
		if err := readJSON(s.metaPath(), &meta); err != nil {
			s.logger.Warn("ignoring unreadable publish meta", zap.String("path", s.metaPath()), zap.Error(err))
			meta = Meta{}
		}
	}
	if meta.Rows == 0 {
		meta.Rows = len(r.Entries())
	}

	s.current = r
	s.meta = meta
	s.logger.Info("loaded published report", zap.String("path", path), zap.Int("rows", meta.Rows))
	return nil
}

// Save 보고서를 검증한 뒤 원자적으로 저장하고 현재 게시본으로 교체
func (s *Store) Save(r *model.Report, meta Meta) error {
	if err := report.Validate(r); err != nil {
		return err
	}
	if meta.PublishedAt.IsZero() {
		meta.PublishedAt = time.Now()
	}
	meta.Rows = len(r.Entries())

	var buf bytes.Buffer
	if err := report.EncodeJSON(&buf, r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.Path(), buf.Bytes()); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	if err := writeJSONAtomic(s.metaPath(), meta); err != nil {
		return fmt.Errorf("publish meta: %w", err)
	}

	s.current = r
	s.meta = meta
	s.logger.Info("report published",
		zap.String("path", s.Path()),
		zap.String("title", r.Title),
		zap.Int("rows", meta.Rows))
	return nil
}

// Current 현재 게시본 (없으면 ErrNotPublished)
func (s *Store) Current() (*model.Report, Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, Meta{}, ErrNotPublished
	}
	return s.current, s.meta, nil
}

// Reload 디스크의 게시본을 다시 읽는다
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.meta = Meta{}
	return s.load()
}
