package handler

import (
	"errors"

	"github.com/philipp01105/nicepick/core"
)

var (
	// ErrQueueFull is returned when an entry cannot be enqueued without blocking
	ErrQueueFull = errors.New("log queue full")
	// ErrClosed is returned when an entry is handed to a closed handler
	ErrClosed = errors.New("log handler closed")
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle takes ownership of entry. It must never block the caller;
	// when the entry cannot be accepted it returns ErrQueueFull or ErrClosed.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep delivery counters
type StatsProvider interface {
	Stats() Snapshot
}

// Emitter is the level-gated entry point the bridges log through.
// *logger.Logger implements it.
type Emitter interface {
	Enabled(level core.Level) bool
	Emit(level core.Level, msg string, caller core.CallerInfo)
}
