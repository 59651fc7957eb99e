package handler

import (
	"sync/atomic"

	"github.com/philipp01105/nicepick/core"
)

const levelCount = int(core.FailLevel) + 1

// Stats tracks handler statistics
type Stats struct {
	dropped     [levelCount]atomic.Uint64
	processed   atomic.Uint64
	writeErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if !level.Valid() {
		return
	}
	s.dropped[level].Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementWriteErrors atomically increments the failed write counter
func (s *Stats) IncrementWriteErrors() {
	s.writeErrors.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.dropped[level].Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Dropped      map[core.Level]uint64
	DroppedTotal uint64
	Processed    uint64
	WriteErrors  uint64
	// Unavailable counts messages lost because no handler could be started
	Unavailable uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Dropped:     make(map[core.Level]uint64, levelCount),
		Processed:   s.GetProcessed(),
		WriteErrors: s.writeErrors.Load(),
	}
	for i := range s.dropped {
		n := s.dropped[i].Load()
		snap.Dropped[core.Level(i)] = n
		snap.DroppedTotal += n
	}
	return snap
}
