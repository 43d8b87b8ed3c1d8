// Package logging constructs the structured logger shared across the
// exporter, reading its verbosity from the TSEXPORT_LOG environment
// variable (or an explicit override from -v).
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envVar = "TSEXPORT_LOG"

// New builds a console-encoded zap logger. An empty level falls back
// to TSEXPORT_LOG, then to "info".
func New(level string) *zap.Logger {
	if level == "" {
		level = os.Getenv(envVar)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = ""

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
