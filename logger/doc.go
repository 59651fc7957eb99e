// Package logger is the public API of the nicepick logging core. Most
// callers only need the package-level functions.
//
// A process calls Init once at startup with the minimum level to print;
// the first call wins and later calls are ignored. Until Init runs the
// minimum level is Info. Init also starts the single background worker
// so that messages logged right after it are delivered.
//
//	logger.Init(logger.DebugLevel)
//	logger.Infof("Configuring application settings")
//	logger.Failf("Failed to load emoji font: %v", err)
//
// Every emission is level-gated first: a filtered message costs one
// atomic load and a comparison, with no formatting or allocation. An
// enabled message is formatted, stamped with the caller's file and line,
// and offered to a bounded queue without blocking. If the queue is full
// the message is dropped and a one-line notice is written directly to
// stderr. Logging never returns an error and never blocks the caller.
//
// Enabled lets callers skip expensive diagnostics entirely:
//
//	if logger.Enabled(logger.DebugLevel) {
//	    start := time.Now()
//	    ...
//	    logger.Debugf("JSON emoji data loaded in %v", time.Since(start))
//	}
//
// Independent Logger values can be built with New for tests or for
// components that need their own queue; Emit makes a Logger usable as a
// handler.Emitter for the slog and zap bridges.
package logger
