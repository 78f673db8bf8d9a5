// Package app is the composition root shared by every errlens command.
//
// # Overview
//
// Open loads the TOML configuration and viewer preferences, applies command
// line overrides, and builds the diagnostic logger. The returned Session
// then reads the configured log through logtail and hands it to errlog.
//
// # Logging
//
// Diagnostics use zap behind a logr.Logger:
//
//   - console output on stderr at warn level, debug with --verbose
//   - optional JSON output to diagnostics.log_file, rotated by lumberjack
//
// The analysed PHP log is never written to by the logger.
//
// # Unavailable logs
//
// A missing log file, or one that cannot be opened, becomes an unavailable
// errlog.Source. The cause is logged and the command renders the "no log"
// guidance instead of failing. Only a cancelled context is returned as an
// error from Analyze.
//
// # Purge
//
// Purge truncates the log in place. Analysing afterwards yields an
// available, empty result.
package app
