package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/nicepick/core"
)

// LevelOkay is the slog level that maps onto core.OkayLevel
const LevelOkay = slog.Level(2)

// SlogHandler is an adapter that implements slog.Handler on top of an
// Emitter. Attributes are appended to the message as key=value pairs so
// the printed line stays a single human readable line.
type SlogHandler struct {
	emitter Emitter
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter around e
func NewSlogHandler(e Emitter) *SlogHandler {
	return &SlogHandler{emitter: e}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.emitter.Enabled(slogLevelToCore(level))
}

// Handle renders the record and passes it to the emitter.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	s.emitter.Emit(slogLevelToCore(record.Level), b.String(), core.CallerFromPC(record.PC))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		emitter: s.emitter,
		attrs:   b.String(),
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		emitter: s.emitter,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.FailLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= LevelOkay:
		return core.OkayLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value" for a, flattening groups with dotted keys
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
