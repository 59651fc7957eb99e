package logger

import (
	"fmt"
	"io"
	"sync"
)

const (
	droppedNotice     = "Warning: Log message dropped (channel full or closed)"
	failedInitNotice  = "Logging system failed to initialize."
	alreadyInitNotice = "Logger worker already initialized."
)

// fallbackWriter writes the logger's own diagnostics straight to a stream,
// bypassing the queue so a saturated queue cannot hide them.
type fallbackWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (f *fallbackWriter) println(msg string) {
	f.mu.Lock()
	fmt.Fprintln(f.w, msg)
	f.mu.Unlock()
}

func (f *fallbackWriter) printf(format string, args ...interface{}) {
	f.mu.Lock()
	fmt.Fprintf(f.w, format+"\n", args...)
	f.mu.Unlock()
}
