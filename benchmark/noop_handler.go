package benchmark

import (
	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/handler"
	"github.com/philipp01105/nicepick/logger"
)

// noopHandler accepts every entry and recycles it immediately, isolating
// the cost of the façade from the cost of formatting and writing.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	core.PutEntry(e)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

// newFacadeOnlyLogger returns a Logger whose handler discards entries
func newFacadeOnlyLogger(level core.Level) *logger.Logger {
	l := logger.New(logger.WithHandlerFactory(func() (handler.Handler, error) {
		return newNoopHandler(), nil
	}))
	l.Init(level)
	return l
}
