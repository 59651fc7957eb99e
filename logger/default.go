package logger

import (
	"sync"

	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/handler"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger, creating it on first use.
// It writes to os.Stderr through a 1024-entry queue.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// Package-level convenience functions using the default logger. Each one
// calls logf directly so the captured call site is the caller's.

// Init sets the process-wide minimum level and starts the worker.
// Only the first call has an effect on the level.
func Init(level Level) {
	Default().Init(level)
}

// Enabled reports whether the default logger emits messages at level
func Enabled(level Level) bool {
	return Default().Enabled(level)
}

// Log logs a formatted message at level using the default logger
func Log(level Level, format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(level) {
		return
	}
	l.logf(level, format, args)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(DebugLevel) {
		return
	}
	l.logf(DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(InfoLevel) {
		return
	}
	l.logf(InfoLevel, format, args)
}

// Okayf logs a formatted success message using the default logger
func Okayf(format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(OkayLevel) {
		return
	}
	l.logf(OkayLevel, format, args)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(WarningLevel) {
		return
	}
	l.logf(WarningLevel, format, args)
}

// Failf logs a formatted failure message using the default logger
func Failf(format string, args ...interface{}) {
	l := Default()
	if !l.Enabled(FailLevel) {
		return
	}
	l.logf(FailLevel, format, args)
}

// Timed is Default().Timed
func Timed(level Level, label string) func() {
	l := Default()
	if !l.Enabled(level) {
		return func() {}
	}
	return l.timed(level, label, core.GetCaller(l.callerSkip-1))
}

// Stats returns the default logger's delivery counters
func Stats() handler.Snapshot {
	return Default().Stats()
}
