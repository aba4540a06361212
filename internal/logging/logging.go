// Package logging builds the process-wide zap logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at level ("debug", "info", "warn", "error") using the given
// encoding ("console" or "json"). debug forces the debug level. Output goes to stderr
// so command output on stdout stays machine-readable.
func New(level, format string, debug bool) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	if debug {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	switch format {
	case "", "console", "json":
	default:
		return nil, fmt.Errorf("invalid log_format %q (use console or json)", format)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	if format == "json" {
		cfg.Encoding = "json"
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !debug {
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
	}
	return cfg.Build()
}

// Install builds a logger with New and makes it the global zap logger.
// It returns a restore function for the previous global.
func Install(level, format string, debug bool) (*zap.Logger, func(), error) {
	log, err := New(level, format, debug)
	if err != nil {
		return nil, nil, err
	}
	undo := zap.ReplaceGlobals(log)
	return log, undo, nil
}
