// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration when stopped.
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Trimmed to Stop/StopWithError

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
	now       func() time.Time
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
		now:       time.Now,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError stops the timer and logs the error with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{"operation": t.operation})
	level := t.level
	message := t.operation + " completed"
	if err != nil {
		level = LevelError
		message = t.operation + " failed"
	}

	t.logger.logTimed(level, message, err, elapsed, fields)
	return elapsed
}
