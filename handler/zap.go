package handler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nicepick/core"
)

// ZapCore implements zapcore.Core on top of an Emitter, so libraries that
// expect a *zap.Logger log through the same queue and worker as everything
// else. Fields are rendered as key=value pairs after the message.
type ZapCore struct {
	emitter Emitter
	fields  string
}

// NewZapCore creates a zapcore.Core that forwards to e
func NewZapCore(e Emitter) *ZapCore {
	return &ZapCore{emitter: e}
}

// Enabled reports whether entries at level would be emitted
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.emitter.Enabled(zapLevelToCore(level))
}

// With returns a core that prepends fields to every entry
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	var b strings.Builder
	b.WriteString(c.fields)
	appendZapFields(&b, fields)
	return &ZapCore{emitter: c.emitter, fields: b.String()}
}

// Check adds c to ce when the entry's level is enabled
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and hands it to the emitter. It never fails and
// does not wait for the line to be written.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	if ent.LoggerName != "" {
		b.WriteString(ent.LoggerName)
		b.WriteString(": ")
	}
	b.WriteString(ent.Message)
	b.WriteString(c.fields)
	appendZapFields(&b, fields)

	var caller core.CallerInfo
	if ent.Caller.Defined {
		caller = core.NewCallerInfo(ent.Caller.File, ent.Caller.Line, ent.Caller.Function)
	}

	c.emitter.Emit(zapLevelToCore(ent.Level), b.String(), caller)
	return nil
}

// Sync is a no-op. Entries handed to the emitter may still be queued when
// it returns, and the emitter offers no flush. zap exits or panics right
// after writing a Fatal or Panic entry, so such an entry can be lost unless
// the owning logger is closed first.
func (c *ZapCore) Sync() error {
	return nil
}

func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.FailLevel
	case level == zapcore.WarnLevel:
		return core.WarningLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func appendZapFields(b *strings.Builder, fields []zapcore.Field) {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)

		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			fmt.Fprint(b, enc.Fields[k])
		}
	}
}
