// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from CLI
//              and file configuration
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	jerror "github.com/msto63/jtime/foundation/core/error"
	jlog "github.com/msto63/jtime/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Verbose forces debug level regardless of Level
	Verbose bool

	// RequestID is attached to every entry when set
	RequestID string

	// Output writer (default: stderr, stdout is reserved for results)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  jlog.DefaultLevel().String(),
		Format: "text",
	}
}

// NewLogger creates a foundation logger. Invalid level or format values
// are reported as CodeInvalidConfig; the returned logger then uses the
// defaults for them and is always usable.
func NewLogger(cfg LoggerConfig) (*jlog.Logger, error) {
	var firstErr error

	level := jlog.DefaultLevel()
	if cfg.Level != "" {
		parsed, err := jlog.ParseLevel(cfg.Level)
		if err != nil {
			firstErr = invalidConfig(err, "log.level", cfg.Level)
		} else {
			level = parsed
		}
	}
	if cfg.Verbose && level > jlog.LevelDebug {
		level = jlog.LevelDebug
	}

	format := jlog.FormatText
	if cfg.Format != "" {
		parsed, err := jlog.ParseFormat(cfg.Format)
		if err != nil {
			if firstErr == nil {
				firstErr = invalidConfig(err, "log.format", cfg.Format)
			}
		} else {
			format = parsed
		}
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	logger := jlog.New().
		WithName(cfg.Name).
		WithLevel(level).
		WithFormat(format).
		WithOutput(output)
	if cfg.RequestID != "" {
		logger = logger.WithRequestID(cfg.RequestID)
	}

	return logger, firstErr
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *jlog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

func invalidConfig(err error, key, value string) error {
	return jerror.Wrap(err, "invalid logging configuration").
		WithCode(jerror.CodeInvalidConfig).
		WithOperation("logging.NewLogger").
		WithDetail("key", key).
		WithDetail("value", value)
}
