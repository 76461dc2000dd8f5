// ============================================================================
// jtime - Julian time values and conversion tool
// ============================================================================
//
// Package:     logging
// Description: Key/value logging front end over the foundation logger
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"

	jlog "github.com/msto63/jtime/foundation/core/log"
	"github.com/msto63/jtime/foundation/utils/tuplex"
)

// Logger wraps the foundation logger with a key/value call style:
//
//	log.Info("converted", "from", "unix", "unit", "ms")
//	log.Error("convert failed", "input", raw, err)
//
// The first error anywhere in the arguments becomes the entry's error.
type Logger struct {
	*jlog.Logger
}

// Wrap returns a key/value front end for logger
func Wrap(logger *jlog.Logger) *Logger {
	return &Logger{Logger: logger}
}

// New creates a key/value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name))
}

// With returns a logger carrying the given key/value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	fields, _ := toFields(keysAndValues...)
	return Wrap(l.Logger.WithFields(fields))
}

// Trace logs a trace message with key-value pairs
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.emit(jlog.LevelTrace, msg, keysAndValues)
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(jlog.LevelDebug, msg, keysAndValues)
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(jlog.LevelInfo, msg, keysAndValues)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit(jlog.LevelWarn, msg, keysAndValues)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(jlog.LevelError, msg, keysAndValues)
}

func (l *Logger) emit(level jlog.Level, msg string, keysAndValues []interface{}) {
	if !l.IsLevelEnabled(level) {
		return
	}

	fields, err := toFields(keysAndValues...)
	switch {
	case err != nil && level >= jlog.LevelError:
		l.Logger.ErrorWithErr(msg, err, fields)
	case err != nil:
		l.Logger.WarnWithErr(msg, err, fields)
	case level == jlog.LevelTrace:
		l.Logger.Trace(msg, fields)
	case level == jlog.LevelDebug:
		l.Logger.Debug(msg, fields)
	case level == jlog.LevelInfo:
		l.Logger.Info(msg, fields)
	case level == jlog.LevelWarn:
		l.Logger.Warn(msg, fields)
	default:
		l.Logger.Error(msg, fields)
	}
}

// toFields converts key-value pairs to jlog.Fields. The first error value is
// removed from the pairs, together with its key when it sits in a value
// position, and returned separately. Non-string keys are
// formatted with %v, a trailing key without value maps to "(missing)".
func toFields(keysAndValues ...interface{}) (jlog.Fields, error) {
	if len(keysAndValues) == 0 {
		return nil, nil
	}

	var err error
	if i := tuplex.FirstOfType[error](0, keysAndValues...); i != tuplex.NotFound {
		err = keysAndValues[i].(error)
		// an error in value position takes its key with it
		from := i
		if i%2 == 1 {
			from = i - 1
		}
		rest := make([]interface{}, 0, len(keysAndValues))
		rest = append(rest, keysAndValues[:from]...)
		keysAndValues = append(rest, keysAndValues[i+1:]...)
	}

	fields := make(jlog.Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		if i+1 < len(keysAndValues) {
			fields[key] = keysAndValues[i+1]
		} else {
			fields[key] = "(missing)"
		}
	}
	return fields, err
}
