package app

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/five82/errlens/internal/config"
	"github.com/five82/errlens/internal/errlog"
	"github.com/five82/errlens/internal/logtail"
	"github.com/five82/errlens/internal/prefs"
)

// Options configure an errlens session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/errlens/prefs.toml
	LogPath    string // overrides log_path from the config
	Verbose    bool
}

// Session carries the loaded configuration and logger for one command.
type Session struct {
	Config config.Config
	Prefs  prefs.Prefs
	Log    logr.Logger

	flush func()
}

// Open loads configuration and preferences and builds the logger.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.LogPath != "" {
		path, err := config.ExpandPath(opts.LogPath)
		if err != nil {
			return nil, fmt.Errorf("log path: %w", err)
		}
		cfg.LogPath = path
	}

	logger, flush := NewLogger(LogSettings{
		Verbose:   opts.Verbose,
		File:      cfg.DiagnosticsLog,
		MaxSizeMB: cfg.DiagnosticsMaxMB,
	})

	s := &Session{
		Config: cfg,
		Prefs:  prefs.Load(opts.PrefsPath),
		Log:    logger,
		flush:  flush,
	}
	s.Log.V(1).Info("Loaded configuration", "logPath", cfg.LogPath, "maxLines", cfg.MaxLines)
	return s, nil
}

// Close flushes the logger.
func (s *Session) Close() {
	if s.flush != nil {
		s.flush()
	}
}

// DefaultOptions returns the filter and display options from the config.
func (s *Session) DefaultOptions() errlog.Options {
	opts, err := s.Config.Options()
	if err != nil {
		// Load already validated the filters.
		s.Log.Error(err, "Invalid filter options, showing everything")
		return errlog.AllEnabled()
	}
	return opts
}

// Analyze reads the configured log and runs it through errlog. A log that
// cannot be read is reported as unavailable and the cause is logged.
func (s *Session) Analyze(ctx context.Context, opts errlog.Options) (errlog.Result, error) {
	src, err := s.Source(ctx)
	if err != nil {
		return errlog.Result{}, err
	}
	res := errlog.Analyze(src, opts)
	s.Log.V(1).Info("Analyzed log",
		"available", res.Available,
		"lines", len(res.Lines),
		"total", res.Counts.Total,
		"displayed", res.Counts.Displayed,
		"orphans", len(res.Groups.Orphans),
		"options", opts.String())
	return res, nil
}

// Source reads the configured log.
func (s *Session) Source(ctx context.Context) (errlog.Source, error) {
	if err := ctx.Err(); err != nil {
		return errlog.Source{}, err
	}
	src, err := logtail.Load(s.Config.LogPath, s.Config.MaxLines)
	if err != nil {
		s.Log.Error(err, "Error reading log", "path", s.Config.LogPath)
		return errlog.Source{}, nil
	}
	if !src.Available {
		s.Log.Info("Log file not found", "path", s.Config.LogPath)
	}
	return src, nil
}

// Purge truncates the configured log to zero bytes.
func (s *Session) Purge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := logtail.Truncate(s.Config.LogPath); err != nil {
		return fmt.Errorf("purge %s: %w", s.Config.LogPath, err)
	}
	s.Log.Info("Purged log", "path", s.Config.LogPath)
	return nil
}
