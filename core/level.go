package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised input
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// OkayLevel for reporting that an operation completed successfully
	OkayLevel
	// WarningLevel for recoverable problems
	WarningLevel
	// FailLevel for failed operations
	FailLevel
)

// ColorReset restores the terminal's default style
const ColorReset = "\x1b[0m"

var levelLabels = [...]string{
	DebugLevel:   "DBUG",
	InfoLevel:    "INFO",
	OkayLevel:    "OKAY",
	WarningLevel: "WARN",
	FailLevel:    "FAIL",
}

var levelColors = [...]string{
	DebugLevel:   "\x1b[35m", // purple
	InfoLevel:    "\x1b[34m", // blue
	OkayLevel:    "\x1b[32m", // green
	WarningLevel: "\x1b[33m", // yellow
	FailLevel:    "\x1b[31m", // red
}

var levelNames = [...]string{
	DebugLevel:   "debug",
	InfoLevel:    "info",
	OkayLevel:    "okay",
	WarningLevel: "warning",
	FailLevel:    "fail",
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= FailLevel
}

// Label returns the fixed four character tag printed in log lines
func (l Level) Label() string {
	if !l.Valid() {
		return "????"
	}
	return levelLabels[l]
}

// Color returns the ANSI escape sequence used to highlight the level tag
func (l Level) Color() string {
	if !l.Valid() {
		return ""
	}
	return levelColors[l]
}

// String returns the lowercase name of the level
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level name or label to a Level.
// Unknown input yields InfoLevel together with an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "okay", "ok":
		return OkayLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "fail", "error":
		return FailLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
