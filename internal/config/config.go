package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"rosterboard/internal/parser"
	"rosterboard/internal/report"
)

// FileName 기본 설정 파일 이름
const FileName = "config.toml"

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Criteria CriteriaConfig `toml:"criteria"`
	Roster   RosterConfig   `toml:"roster"`
	Report   ReportConfig   `toml:"report"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// DataConfig 데이터 설정
type DataConfig struct {
	DataDir    string `toml:"data_dir"`
	ReportFile string `toml:"report_file"`
}

// CriteriaConfig 기준표 열 배치 (0 기반)
type CriteriaConfig struct {
	Sheet          string `toml:"sheet"`
	HeaderRows     int    `toml:"header_rows"`
	CategoryColumn int    `toml:"category_column"`
	PositionColumn int    `toml:"position_column"`
}

// RosterConfig 발령 데이터 헤더 이름
type RosterConfig struct {
	Sheet          string   `toml:"sheet"`
	Marker         string   `toml:"marker"`
	HeaderScanRows int      `toml:"header_scan_rows"`
	NameColumn     string   `toml:"name_column"`
	PositionColumn string   `toml:"position_column"`
	StartColumn    string   `toml:"start_column"`
	EndColumn      string   `toml:"end_column"`
	StatusColumn   string   `toml:"status_column"`
	ActiveStatuses []string `toml:"active_statuses"`
}

// ReportConfig 보고서 문구
type ReportConfig struct {
	FallbackDate string    `toml:"fallback_date"` // YYYYMMDD
	TitleFormat  string    `toml:"title_format"`
	DateFormat   string    `toml:"date_format"`
	Headers      [4]string `toml:"headers"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// LoadConfigInfo 설정 로드 메타 정보
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	crit := parser.DefaultCriteriaLayout()
	roster := parser.DefaultRosterLayout()
	opts := report.DefaultOptions()

	return &AppConfig{
		Server: ServerConfig{
			Port:        20262,
			DevMode:     false,
			OpenBrowser: true,
		},
		Data: DataConfig{
			DataDir:    "data",
			ReportFile: "professor_data.json",
		},
		Criteria: CriteriaConfig{
			HeaderRows:     crit.HeaderRows,
			CategoryColumn: crit.CategoryColumn,
			PositionColumn: crit.PositionColumn,
		},
		Roster: RosterConfig{
			Marker:         roster.Marker,
			HeaderScanRows: roster.HeaderScanRows,
			NameColumn:     roster.NameColumn,
			PositionColumn: roster.PositionColumn,
			StartColumn:    roster.StartColumn,
			EndColumn:      roster.EndColumn,
			StatusColumn:   roster.StatusColumn,
			ActiveStatuses: roster.ActiveStatuses,
		},
		Report: ReportConfig{
			FallbackDate: "20251001",
			TitleFormat:  opts.TitleFormat,
			DateFormat:   opts.DateFormat,
			Headers:      opts.Headers,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 실행 파일이 있는 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 실행 파일 옆의 config.toml
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, FileName)
}

// LoadConfigWithInfo path 의 설정을 읽는다 (빈 문자열이면 DefaultPath).
// 파일이 없으면 기본 설정을 돌려준다.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.FileFound = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// 설정 파일이 없으면 기본값
	default:
		return nil, info, err
	}

	// 환경 변수 우선
	if v := os.Getenv("ROSTERBOARD_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("ROSTERBOARD_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}

	return config, info, nil
}

// LoadConfig path 의 설정을 읽는다
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// SaveConfig 설정을 path 에 저장 (빈 문자열이면 DefaultPath)
func SaveConfig(config *AppConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveDataDir 상대 경로면 실행 파일 디렉터리 기준
func ResolveDataDir(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// EnsureDataDir 데이터 디렉터리와 하위 디렉터리 생성
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := ResolveDataDir(config)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// CriteriaLayout 기준표 설정을 파서 배치로 변환
func (c *AppConfig) CriteriaLayout() parser.CriteriaLayout {
	return parser.CriteriaLayout{
		HeaderRows:     c.Criteria.HeaderRows,
		CategoryColumn: c.Criteria.CategoryColumn,
		PositionColumn: c.Criteria.PositionColumn,
	}
}

// RosterLayout 발령 데이터 설정을 파서 배치로 변환
func (c *AppConfig) RosterLayout() parser.RosterLayout {
	def := parser.DefaultRosterLayout()
	l := parser.RosterLayout{
		Marker:         orDefault(c.Roster.Marker, def.Marker),
		HeaderScanRows: c.Roster.HeaderScanRows,
		NameColumn:     orDefault(c.Roster.NameColumn, def.NameColumn),
		PositionColumn: orDefault(c.Roster.PositionColumn, def.PositionColumn),
		StartColumn:    orDefault(c.Roster.StartColumn, def.StartColumn),
		EndColumn:      orDefault(c.Roster.EndColumn, def.EndColumn),
		StatusColumn:   orDefault(c.Roster.StatusColumn, def.StatusColumn),
		ActiveStatuses: c.Roster.ActiveStatuses,
	}
	if l.HeaderScanRows <= 0 {
		l.HeaderScanRows = def.HeaderScanRows
	}
	if len(l.ActiveStatuses) == 0 {
		l.ActiveStatuses = def.ActiveStatuses
	}
	return l
}

// ReportOptions 보고서 생성 옵션으로 변환
func (c *AppConfig) ReportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.Criteria = c.CriteriaLayout()
	opts.Roster = c.RosterLayout()
	if d, ok := parser.ExtractReportDate(parser.DigitsOnly(c.Report.FallbackDate)); ok {
		opts.FallbackDate = d
	}
	if c.Report.TitleFormat != "" {
		opts.TitleFormat = c.Report.TitleFormat
	}
	if c.Report.DateFormat != "" {
		opts.DateFormat = c.Report.DateFormat
	}
	if c.Report.Headers != [4]string{} {
		opts.Headers = c.Report.Headers
	}
	return opts
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
