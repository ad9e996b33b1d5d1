package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterboard/internal/parser"
	"rosterboard/internal/report"
)

func TestDefaultConfigMatchesBuiltins(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, parser.DefaultCriteriaLayout(), cfg.CriteriaLayout())
	assert.Equal(t, parser.DefaultRosterLayout(), cfg.RosterLayout())
	assert.Equal(t, report.DefaultOptions(), cfg.ReportOptions())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.False(t, info.FileFound)
	assert.False(t, info.PortSpecified)
	assert.Equal(t, 20262, cfg.Server.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[server]
port = 18080

[criteria]
category_column = 0
position_column = 2

[roster]
marker = "이름"
name_column = "이름"
active_statuses = []

[report]
fallback_date = "2026.03.01"
headers = ["분류", "보직", "이름", "임기"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, info, err := LoadConfigWithInfo(path)
	require.NoError(t, err)
	assert.True(t, info.FileFound)
	assert.True(t, info.PortSpecified)
	assert.Equal(t, 18080, cfg.Server.Port)

	layout := cfg.CriteriaLayout()
	assert.Equal(t, 0, layout.CategoryColumn)
	assert.Equal(t, 2, layout.PositionColumn)
	assert.Equal(t, 1, layout.HeaderRows)

	roster := cfg.RosterLayout()
	assert.Equal(t, "이름", roster.Marker)
	assert.Equal(t, "발령직위", roster.PositionColumn)
	// 빈 목록은 기본 재직 상태로 대체
	assert.Equal(t, []string{"재직", "유지"}, roster.ActiveStatuses)

	opts := cfg.ReportOptions()
	assert.Equal(t, "2026.03.01.", opts.FallbackDate)
	assert.Equal(t, [4]string{"분류", "보직", "이름", "임기"}, opts.Headers)
	assert.Equal(t, "교 원 보 직 자 현 황 (%s)", opts.TitleFormat)
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0644))

	_, _, err := LoadConfigWithInfo(path)
	require.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROSTERBOARD_DATA_DIR", dir)
	t.Setenv("ROSTERBOARD_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(dir, "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Data.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, dir, ResolveDataDir(cfg))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	cfg.Server.Port = 9999
	cfg.Roster.ActiveStatuses = []string{"재직"}

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnsureDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "data")

	dir, err := EnsureDataDir(cfg)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "uploads"))
	assert.DirExists(t, filepath.Join(dir, "exports"))
}
