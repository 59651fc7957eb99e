package consolehandler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/formatter"
	"github.com/philipp01105/nicepick/handler"
)

var fixedClock = func() time.Time { return time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC) }

func newEntry(level core.Level, msg string) *core.Entry {
	e := core.GetEntry()
	e.Level = level
	e.Message = msg
	return e
}

func TestConsoleHandler_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Clock:  fixedClock,
	})

	entry := newEntry(core.InfoLevel, "async test")
	entry.Caller = core.NewCallerInfo("/a/b/app.go", 7, "main.main")
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	want := "[2023-03-01 08:00:00] - \x1b[34m[INFO]\x1b[0m - [app.go:7]\t| async test\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestConsoleHandler_Defaults(t *testing.T) {
	cfg := ConsoleConfig{}
	applyConsoleDefaults(&cfg)

	if cfg.Writer == nil || cfg.Formatter == nil || cfg.Clock == nil {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want %d", cfg.BufferSize, DefaultBufferSize)
	}
}

func TestConsoleHandler_FIFO(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     &buf,
		BufferSize: 256,
		Formatter:  formatter.NewTextFormatter(formatter.Config{DisableColor: true, DisableCaller: true}),
	})

	for i := 0; i < 200; i++ {
		if err := h.Handle(newEntry(core.DebugLevel, fmt.Sprintf("msg-%03d", i))); err != nil {
			t.Fatalf("Handle(%d) error = %v", i, err)
		}
	}
	h.Close()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 200 {
		t.Fatalf("got %d lines, want 200", len(lines))
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, fmt.Sprintf("| msg-%03d", i)) {
			t.Fatalf("line %d out of order: %q", i, line)
		}
	}
}

func TestConsoleHandler_HandleAfterClose(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	h.Close()

	err := h.Handle(newEntry(core.FailLevel, "late"))
	if !errors.Is(err, handler.ErrClosed) {
		t.Errorf("Handle() after Close error = %v, want ErrClosed", err)
	}
	if got := h.Stats().Dropped[core.FailLevel]; got != 1 {
		t.Errorf("Dropped[fail] = %d, want 1", got)
	}

	// second close is a no-op
	if err := h.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("disk on fire") }

func TestConsoleHandler_WriteErrorKeepsWorkerAlive(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: errWriter{}})

	for i := 0; i < 3; i++ {
		if err := h.Handle(newEntry(core.InfoLevel, "x")); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}

	err := h.Close()
	if err == nil || !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Close() error = %v, want write error", err)
	}
	stats := h.Stats()
	if stats.WriteErrors != 3 {
		t.Errorf("WriteErrors = %d, want 3", stats.WriteErrors)
	}
	if stats.Processed != 0 {
		t.Errorf("Processed = %d, want 0", stats.Processed)
	}
}

func TestConsoleHandler_CloseReportsBoundedWriteErrors(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: errWriter{}})

	const n = maxReportedErrors + 5
	for i := 0; i < n; i++ {
		if err := h.Handle(newEntry(core.FailLevel, "x")); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
	}

	err := h.Close()
	if got := len(multierr.Errors(err)); got != maxReportedErrors {
		t.Errorf("Close() returned %d errors, want %d", got, maxReportedErrors)
	}
	if got := h.Stats().WriteErrors; got != n {
		t.Errorf("WriteErrors = %d, want %d", got, n)
	}
}

// plainFormatter only implements formatter.Formatter
type plainFormatter struct{}

func (plainFormatter) Format(t time.Time, entry *core.Entry) ([]byte, error) {
	return []byte(entry.Level.Label() + " " + entry.Message + "\n"), nil
}

// streamFormatter writes straight to the destination and never goes
// through Format
type streamFormatter struct {
	calls int
}

func (f *streamFormatter) Format(t time.Time, entry *core.Entry) ([]byte, error) {
	return nil, errors.New("Format should not be used")
}

func (f *streamFormatter) FormatTo(t time.Time, entry *core.Entry, w io.Writer) error {
	f.calls++
	_, err := io.WriteString(w, "stream "+entry.Message+"\n")
	return err
}

func TestConsoleHandler_CustomFormatters(t *testing.T) {
	t.Run("format only", func(t *testing.T) {
		var buf bytes.Buffer
		h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: plainFormatter{}})
		_ = h.Handle(newEntry(core.OkayLevel, "one"))
		_ = h.Handle(newEntry(core.WarningLevel, "two"))
		if err := h.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if got, want := buf.String(), "OKAY one\nWARN two\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
		if got := h.Stats().Processed; got != 2 {
			t.Errorf("Processed = %d, want 2", got)
		}
	})

	t.Run("writer formatter", func(t *testing.T) {
		var buf bytes.Buffer
		f := &streamFormatter{}
		h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: f})
		_ = h.Handle(newEntry(core.InfoLevel, "direct"))
		if err := h.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if got, want := buf.String(), "stream direct\n"; got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
		if f.calls != 1 {
			t.Errorf("FormatTo calls = %d, want 1", f.calls)
		}
	})
}

func TestConsoleHandler_ConcurrentProducers(t *testing.T) {
	const producers, perProducer = 8, 500

	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     &buf,
		BufferSize: 64,
		Formatter:  formatter.NewTextFormatter(formatter.Config{DisableColor: true, DisableCaller: true}),
	})

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				e := newEntry(core.InfoLevel, fmt.Sprintf("p%d-%d", p, i))
				if err := h.Handle(e); err != nil {
					core.PutEntry(e)
				}
			}
		}(p)
	}
	wg.Wait()
	h.Close()

	stats := h.Stats()
	if stats.Processed+stats.DroppedTotal != producers*perProducer {
		t.Errorf("processed %d + dropped %d != %d", stats.Processed, stats.DroppedTotal, producers*perProducer)
	}

	last := make(map[int]int)
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		msg := line[strings.LastIndex(line, "| ")+2:]
		var p, i int
		if _, err := fmt.Sscanf(msg, "p%d-%d", &p, &i); err != nil {
			t.Fatalf("unexpected line %q", line)
		}
		if prev, ok := last[p]; ok && i <= prev {
			t.Fatalf("producer %d out of order: %d after %d", p, i, prev)
		}
		last[p] = i
	}
}
