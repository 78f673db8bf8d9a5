package app

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogSettings controls errlens' own diagnostic logging.
type LogSettings struct {
	Verbose bool
	// File, when set, receives JSON diagnostics rotated at MaxSizeMB.
	File      string
	MaxSizeMB int
}

// NewLogger builds the diagnostic logger. Console output goes to stderr at
// warn level, or debug level when verbose. The returned func flushes buffered
// entries.
func NewLogger(settings LogSettings) (logr.Logger, func()) {
	level := zapcore.WarnLevel
	if settings.Verbose {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	if settings.File != "" {
		maxSize := settings.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotator := &lumberjack.Logger{
			Filename:   settings.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			zapcore.DebugLevel,
		))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...))
	flush := func() { _ = zapLogger.Sync() }
	return zapr.NewLogger(zapLogger).WithName("errlens"), flush
}
