// Package core defines the shared types of the nicepick logging core.
//
// It provides the Level type used for filtering and colouring, the
// Entry type carried from a call site to the background writer, and
// the timestamp formatter used when an entry is printed.
//
// Entry objects are pooled via sync.Pool. A producer gets one with
// GetEntry and hands it over to a handler; whoever consumes it last
// returns it with PutEntry.
//
// FormatTimestamp renders epoch seconds as "YYYY-MM-DD HH:MM:SS" in UTC
// by walking the proleptic Gregorian calendar forward from 1970. Inputs
// before the epoch cannot be expressed; Timestamp clamps them to zero.
package core
