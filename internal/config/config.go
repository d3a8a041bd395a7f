// Package config loads the client configuration from a TOML file with
// environment overrides. Every setting has a usable default so a fresh
// install only needs the service URL.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config and data directories.
	AppName = "timecard"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Config holds the full client configuration.
type Config struct {
	// ServerURL is the base URL of the timesheet service.
	ServerURL string `toml:"server_url"`
	// TimeoutMs bounds each request to the service.
	TimeoutMs int `toml:"timeout_ms"`
	// DataDir holds the local database (session, drafts).
	DataDir string `toml:"data_dir"`
	// ExportDir is where PDF and spreadsheet exports are written.
	ExportDir string `toml:"export_dir"`
	// LogFile receives structured service logs; empty disables logging.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with defaults for everything but the
// server URL, which has no sensible default and must be configured.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		TimeoutMs: 15000,
		DataDir:   filepath.Join(home, "."+AppName),
		ExportDir: ".",
	}
}

// Path returns the config file location, creating the directory when
// missing. Uses os.UserConfigDir for platform-correct placement.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads the config file when present and applies environment
// overrides. A missing file is not an error; defaults apply.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads one specific config file, for tests and --config.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// DBPath returns the local database location, creating DataDir.
func (c Config) DBPath() (string, error) {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(c.DataDir, AppName+".db"), nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TIMECARD_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("TIMECARD_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TIMECARD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TIMECARD_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("TIMECARD_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}
