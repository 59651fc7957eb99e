package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/formatter"
	"github.com/philipp01105/nicepick/handler"
	"github.com/philipp01105/nicepick/handler/consolehandler"
)

// levelUnset marks a Logger whose minimum level has not been chosen yet
const levelUnset int32 = -1

// defaultCallerSkip is the number of frames between core.GetCaller and the
// user's call site: logf, then the public Debugf/Infof/... entry point.
const defaultCallerSkip = 2

// HandlerFactory builds the handler that owns the delivery queue. It is
// called at most once per Logger.
type HandlerFactory func() (handler.Handler, error)

// handlerSlot boxes the handler so it can live in an atomic.Pointer
type handlerSlot struct {
	h handler.Handler
}

// Logger gates messages by level and hands them to a background worker.
// The minimum level and the worker are each set up exactly once; after
// that every read is lock-free.
type Logger struct {
	level      atomic.Int32
	workerOnce sync.Once
	slot       atomic.Pointer[handlerSlot]

	newHandler  HandlerFactory
	fallback    *fallbackWriter
	callerSkip  int
	unavailable atomic.Uint64
}

// Option configures a Logger
type Option func(*options)

type options struct {
	console    consolehandler.ConsoleConfig
	factory    HandlerFactory
	fallback   io.Writer
	callerSkip int
}

// WithWriter sets the stream the worker writes to (default: os.Stderr)
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.console.Writer = w }
}

// WithBufferSize sets the capacity of the delivery queue (default: 1024)
func WithBufferSize(n int) Option {
	return func(o *options) { o.console.BufferSize = n }
}

// WithFormatter replaces the line formatter used by the worker
func WithFormatter(f formatter.Formatter) Option {
	return func(o *options) { o.console.Formatter = f }
}

// WithClock sets the time source used to stamp written lines
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.console.Clock = clock }
}

// WithHandlerFactory replaces the console worker with a custom handler.
// WithWriter, WithBufferSize, WithFormatter and WithClock are ignored.
func WithHandlerFactory(f HandlerFactory) Option {
	return func(o *options) { o.factory = f }
}

// WithFallback sets the stream for the logger's own diagnostics such as
// drop notices (default: os.Stderr)
func WithFallback(w io.Writer) Option {
	return func(o *options) { o.fallback = w }
}

// WithCallerSkip adds extra frames to skip when capturing the call site,
// for wrappers that forward to Debugf/Infof/...
func WithCallerSkip(extra int) Option {
	return func(o *options) { o.callerSkip = defaultCallerSkip + extra }
}

// New creates a Logger. The worker is not started until Init is called
// or the first enabled message is emitted.
func New(opts ...Option) *Logger {
	o := options{
		fallback:   os.Stderr,
		callerSkip: defaultCallerSkip,
	}
	for _, opt := range opts {
		opt(&o)
	}

	factory := o.factory
	if factory == nil {
		cfg := o.console
		factory = func() (handler.Handler, error) {
			return consolehandler.NewConsoleHandler(cfg), nil
		}
	}

	l := &Logger{
		newHandler: factory,
		fallback:   &fallbackWriter{w: o.fallback},
		callerSkip: o.callerSkip,
	}
	l.level.Store(levelUnset)
	return l
}

// Init sets the minimum level and starts the worker. Only the first call
// chooses the level; later calls are ignored.
func (l *Logger) Init(level Level) {
	if level.Valid() {
		l.level.CompareAndSwap(levelUnset, int32(level))
	} else {
		l.fallback.printf("Ignoring invalid log level %d", int8(level))
	}
	l.ensureWorker()
}

// Level returns the minimum level in effect
func (l *Logger) Level() Level {
	v := l.level.Load()
	if v == levelUnset {
		return DefaultLevel
	}
	return Level(v)
}

// Enabled reports whether messages at level pass the minimum level.
// Use it to skip expensive diagnostic work for filtered levels.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// ensureWorker starts the handler on first use and returns it, or nil if
// it could not be started.
func (l *Logger) ensureWorker() handler.Handler {
	l.workerOnce.Do(l.startWorker)
	if s := l.slot.Load(); s != nil {
		return s.h
	}
	return nil
}

func (l *Logger) startWorker() {
	h, err := l.newHandler()
	if err != nil || h == nil {
		l.fallback.printf("Logging system failed to initialize: %v", err)
		return
	}
	if !l.slot.CompareAndSwap(nil, &handlerSlot{h: h}) {
		l.fallback.println(alreadyInitNotice)
		_ = h.Close()
	}
}

// logf is the single path shared by every public entry point so that the
// caller is always defaultCallerSkip frames above core.GetCaller.
func (l *Logger) logf(level Level, format string, args []interface{}) {
	h := l.ensureWorker()
	if h == nil {
		l.unavailable.Add(1)
		l.fallback.println(failedInitNotice)
		return
	}
	caller := core.GetCaller(l.callerSkip)
	l.send(h, level, fmt.Sprintf(format, args...), caller)
}

func (l *Logger) send(h handler.Handler, level Level, msg string, caller core.CallerInfo) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	entry.Caller = caller

	if err := h.Handle(entry); err != nil {
		core.PutEntry(entry)
		l.fallback.println(droppedNotice)
	}
}

// Emit logs an already rendered message with an explicit call site. It is
// the entry point used by the slog and zap bridges.
func (l *Logger) Emit(level Level, msg string, caller core.CallerInfo) {
	if !l.Enabled(level) {
		return
	}
	h := l.ensureWorker()
	if h == nil {
		l.unavailable.Add(1)
		l.fallback.println(failedInitNotice)
		return
	}
	l.send(h, level, msg, caller)
}

// Log logs a formatted message at the given level
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.logf(level, format, args)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(DebugLevel) {
		return
	}
	l.logf(DebugLevel, format, args)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(InfoLevel) {
		return
	}
	l.logf(InfoLevel, format, args)
}

// Okayf logs a success message with formatting
func (l *Logger) Okayf(format string, args ...interface{}) {
	if !l.Enabled(OkayLevel) {
		return
	}
	l.logf(OkayLevel, format, args)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.Enabled(WarningLevel) {
		return
	}
	l.logf(WarningLevel, format, args)
}

// Failf logs a failure message with formatting
func (l *Logger) Failf(format string, args ...interface{}) {
	if !l.Enabled(FailLevel) {
		return
	}
	l.logf(FailLevel, format, args)
}

// Timed starts a stopwatch and returns a func that logs "<label> took <d>"
// at level when called. The reported call site is the line that called
// Timed, not the line that runs the returned func. If level is filtered out
// nothing is measured and the returned func does nothing.
//
//	defer log.Timed(logger.DebugLevel, "view construction")()
func (l *Logger) Timed(level Level, label string) func() {
	if !l.Enabled(level) {
		return func() {}
	}
	// Timed is one frame above GetCaller, the user one more
	return l.timed(level, label, core.GetCaller(l.callerSkip-1))
}

func (l *Logger) timed(level Level, label string, caller core.CallerInfo) func() {
	start := time.Now()
	return func() {
		l.Emit(level, fmt.Sprintf("%s took %v", label, time.Since(start)), caller)
	}
}

// Stats returns the delivery counters of the worker
func (l *Logger) Stats() handler.Snapshot {
	var snap handler.Snapshot
	if s := l.slot.Load(); s != nil {
		if sp, ok := s.h.(handler.StatsProvider); ok {
			snap = sp.Stats()
		}
	}
	snap.Unavailable = l.unavailable.Load()
	return snap
}

// Close stops the worker after draining queued messages. Messages emitted
// afterwards are dropped with a notice. The process-wide logger is never
// closed in normal operation.
func (l *Logger) Close() error {
	if s := l.slot.Load(); s != nil {
		return s.h.Close()
	}
	return nil
}
