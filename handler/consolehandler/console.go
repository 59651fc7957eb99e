package consolehandler

import (
	"io"
	"os"
	"time"

	"github.com/philipp01105/nicepick/formatter"
)

// DefaultBufferSize is the capacity of the delivery queue
const DefaultBufferSize = 1024

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// BufferSize is the size of the async queue (default: 1024)
	BufferSize int
	// Clock stamps entries when they are written (default: time.Now)
	Clock func() time.Time
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
}

// NewConsoleHandler creates a console handler and starts its worker goroutine.
func NewConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	applyConsoleDefaults(&cfg)
	return newAsyncConsoleHandler(cfg)
}
