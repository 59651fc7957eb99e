package logger

import (
	"github.com/philipp01105/nicepick/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	OkayLevel    = core.OkayLevel
	WarningLevel = core.WarningLevel
	FailLevel    = core.FailLevel
)

// DefaultLevel is the minimum level in effect until Init is called
const DefaultLevel = InfoLevel

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
