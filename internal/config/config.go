package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/errlens/internal/errlog"
)

// Config captures where the log lives and how it is presented.
type Config struct {
	LogPath  string
	MaxLines int

	// Filters holds the [filters] table. Nil means the table was absent and
	// every category is enabled.
	Filters map[string]bool

	ShowDatetime bool
	ReverseOrder bool
	ShowOrphans  bool

	DiagnosticsLog   string
	DiagnosticsMaxMB int
}

const (
	defaultConfigPath       = "~/.config/errlens/config.toml"
	defaultLogPath          = "~/.local/share/errlens/php-error.log"
	defaultDiagnosticsMaxMB = 10
)

type rawConfig struct {
	LogPath  string          `toml:"log_path"`
	MaxLines int             `toml:"max_lines"`
	Filters  map[string]bool `toml:"filters"`
	Display  struct {
		ShowDatetime *bool `toml:"show_datetime"`
		ReverseOrder bool  `toml:"reverse_order"`
		ShowOrphans  bool  `toml:"show_orphans"`
	} `toml:"display"`
	Diagnostics struct {
		LogFile   string `toml:"log_file"`
		MaxSizeMB int    `toml:"max_size_mb"`
	} `toml:"diagnostics"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogPath:          mustExpand(defaultLogPath),
		ShowDatetime:     true,
		DiagnosticsMaxMB: defaultDiagnosticsMaxMB,
	}
}

// Load locates and parses the errlens config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if raw.MaxLines > 0 {
		cfg.MaxLines = raw.MaxLines
	}
	if raw.Filters != nil {
		cfg.Filters = raw.Filters
	}
	if raw.Display.ShowDatetime != nil {
		cfg.ShowDatetime = *raw.Display.ShowDatetime
	}
	cfg.ReverseOrder = raw.Display.ReverseOrder
	cfg.ShowOrphans = raw.Display.ShowOrphans

	if diag := strings.TrimSpace(raw.Diagnostics.LogFile); diag != "" {
		cfg.DiagnosticsLog = mustExpand(diag)
	}
	if raw.Diagnostics.MaxSizeMB > 0 {
		cfg.DiagnosticsMaxMB = raw.Diagnostics.MaxSizeMB
	}

	if _, err := cfg.Options(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Options converts the filter and display settings into errlog options.
func (c Config) Options() (errlog.Options, error) {
	var opts errlog.Options
	if c.Filters == nil {
		opts = errlog.AllEnabled()
	} else {
		var err error
		opts, err = errlog.OptionsFromMap(c.Filters)
		if err != nil {
			return errlog.Options{}, err
		}
	}
	opts.ShowDatetime = c.ShowDatetime
	opts.ReverseOrder = c.ReverseOrder
	opts.ShowOrphans = c.ShowOrphans
	return opts, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves "~" and relative paths to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
