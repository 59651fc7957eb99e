// Package handler defines the Handler interface that sits between the
// logging façade and the background writer, together with the shared
// delivery counters and two bridges for third-party logging APIs.
//
// A Handler takes ownership of an entry only when Handle returns nil.
// Implementations must not block; a full or closed queue is reported
// with ErrQueueFull or ErrClosed and the caller decides how to surface
// the loss.
//
// Bridges:
//
//   - SlogHandler adapts an Emitter to log/slog.Handler.
//   - ZapCore adapts an Emitter to go.uber.org/zap/zapcore.Core.
//
// Both render attributes as key=value text appended to the message;
// the output stays one human readable line per entry.
package handler
