// Package formatter defines how log entries are serialized into bytes.
//
// The output layout is fixed:
//
//	[<timestamp>] - <color>[<LVL>]<reset> - [<file>:<line>]	| <message>
//
// The timestamp is supplied by the writer at the moment the entry is
// printed, not by the producer, and is rendered with
// core.AppendTimestamp. Colour and caller segments can be switched off
// for writers that are not terminals or for tests.
//
// TextFormatter implements Formatter, WriterFormatter and
// BufferFormatter. Handlers check for BufferFormatter at construction
// time and prefer it, so the worker formats into a single reused
// buffer. Buffers larger than 64 KiB are not returned to the pool.
package formatter
