package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://timesheet.nconsulting.example/api"
timeout_ms = 5000
export_dir = "/tmp/exports"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://timesheet.nconsulting.example/api", cfg.ServerURL)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.NotEmpty(t, cfg.DataDir, "unset fields keep their defaults")
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Empty(t, cfg.ServerURL)
}

func TestLoadFrom_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `server_url = "unterminated`)
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `server_url = "https://from-file.example"`)

	t.Setenv("TIMECARD_SERVER_URL", "https://from-env.example")
	t.Setenv("TIMECARD_TIMEOUT_MS", "2500")
	t.Setenv("TIMECARD_EXPORT_DIR", "/srv/exports")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example", cfg.ServerURL)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, "/srv/exports", cfg.ExportDir)
}

func TestLoadFrom_BadEnvTimeoutIgnored(t *testing.T) {
	t.Setenv("TIMECARD_TIMEOUT_MS", "soon")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestDBPath_CreatesDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")

	path, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.DataDir, "timecard.db"), path)

	info, err := os.Stat(cfg.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
