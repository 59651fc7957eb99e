// Package consolehandler provides the delivery queue and background
// writer of the logging core.
//
// AsyncConsoleHandler owns a bounded channel of *core.Entry (1024 slots
// by default) and exactly one goroutine that receives from it, formats
// each entry and writes it to the configured writer (os.Stderr by
// default). Handle never blocks: when the queue is full the entry is
// rejected with handler.ErrQueueFull and counted as dropped. After Close
// it is rejected with handler.ErrClosed instead of panicking on a
// closed channel.
//
// Entries from one goroutine are written in the order they were
// accepted. Writes happen only on the worker goroutine.
package consolehandler
