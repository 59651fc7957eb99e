package consolehandler

import (
	"bytes"
	"io"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/formatter"
	"github.com/philipp01105/nicepick/handler"
)

// AsyncConsoleHandler owns a bounded queue and the single goroutine that
// drains it. Producers never block: Handle either enqueues or reports
// that the entry was dropped.
type AsyncConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	clock           func() time.Time
	stats           *handler.Stats

	// mu guards closed and the close of queue; senders hold it shared
	mu     sync.RWMutex
	closed bool
	queue  chan *core.Entry
	done   chan struct{}

	// owned by the process goroutine
	buf       bytes.Buffer
	writeErrs error
	errCount  int
}

// maxReportedErrors bounds how many write errors Close returns; the rest
// are only counted in Stats.
const maxReportedErrors = 8

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		clock:     cfg.Clock,
		stats:     handler.NewStats(),
		queue:     make(chan *core.Entry, cfg.BufferSize),
		done:      make(chan struct{}),
	}

	// Cache the optional fast paths so the worker avoids per-line allocations
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}

	go h.process()

	return h
}

// Handle enqueues entry without blocking. On success the handler owns the
// entry; otherwise ownership stays with the caller.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.stats.IncrementDropped(entry.Level)
		return handler.ErrClosed
	}

	select {
	case h.queue <- entry:
		return nil
	default:
		h.stats.IncrementDropped(entry.Level)
		return handler.ErrQueueFull
	}
}

// process is the worker loop. It blocks until an entry arrives and exits
// once the queue has been closed and drained.
func (h *AsyncConsoleHandler) process() {
	defer close(h.done)

	for entry := range h.queue {
		if err := h.processWrite(entry); err != nil {
			h.stats.IncrementWriteErrors()
			if h.errCount < maxReportedErrors {
				h.writeErrs = multierr.Append(h.writeErrs, err)
			}
			h.errCount++
		} else {
			h.stats.IncrementProcessed()
		}
		core.PutEntry(entry)
	}
}

// processWrite formats and writes one entry. Only the process goroutine
// calls it, so the writer needs no locking.
func (h *AsyncConsoleHandler) processWrite(entry *core.Entry) error {
	now := h.clock()
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(now, entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		return err
	}
	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(now, entry, h.writer)
	}

	data, err := h.formatter.Format(now, entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *AsyncConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops accepting entries, waits for the worker to drain the queue
// and returns the write errors it hit, combined with multierr. Only the
// first few are kept. It is safe to call repeatedly.
func (h *AsyncConsoleHandler) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.queue)
	h.mu.Unlock()

	<-h.done
	return h.writeErrs
}
