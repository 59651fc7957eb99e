package handler

import (
	"sync"

	"github.com/philipp01105/nicepick/core"
)

type emitted struct {
	level  core.Level
	msg    string
	caller core.CallerInfo
}

// recordingEmitter is an Emitter that keeps everything above min
type recordingEmitter struct {
	mu  sync.Mutex
	min core.Level
	got []emitted
}

func (r *recordingEmitter) Enabled(level core.Level) bool {
	return level >= r.min
}

func (r *recordingEmitter) Emit(level core.Level, msg string, caller core.CallerInfo) {
	if !r.Enabled(level) {
		return
	}
	r.mu.Lock()
	r.got = append(r.got, emitted{level, msg, caller})
	r.mu.Unlock()
}
