package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/nicepick/core"
)

// TextFormatter renders entries as
//
//	[2024-02-29 12:00:00] - \x1b[34m[INFO]\x1b[0m - [main.go:42]	| message
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(t time.Time, entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(t, entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(t time.Time, entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(t, entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into buf
func (f *TextFormatter) FormatEntry(t time.Time, entry *core.Entry, buf *bytes.Buffer) {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}

	buf.WriteByte('[')
	buf.Write(core.AppendTimestamp(buf.AvailableBuffer(), uint64(secs)))
	buf.WriteString("] - ")

	if !f.DisableColor {
		buf.WriteString(entry.Level.Color())
	}
	buf.WriteByte('[')
	buf.WriteString(entry.Level.Label())
	buf.WriteByte(']')
	if !f.DisableColor {
		buf.WriteString(core.ColorReset)
	}

	if !f.DisableCaller {
		buf.WriteString(" - [")
		if entry.Caller.Defined {
			buf.WriteString(entry.Caller.ShortFile)
			buf.WriteByte(':')
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		} else {
			buf.WriteString("???")
		}
		buf.WriteByte(']')
	}

	buf.WriteString("\t| ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
