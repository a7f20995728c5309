// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates and starts a timer bound to logger
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to the final timing entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the elapsed time at info level and returns it. Only the first
// call logs.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	fields := t.fields.Merge(Fields{"operation": t.operation})
	t.logger.log(LevelInfo, t.operation+" completed", nil, elapsed, fields)
	return elapsed
}

// StopWithError logs the elapsed time together with err
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}

	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	fields := t.fields.Merge(Fields{"operation": t.operation})
	t.logger.log(LevelError, t.operation+" failed", err, elapsed, fields)
	return elapsed
}
