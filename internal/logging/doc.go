// Package logging provides structured logging for the extraction tool.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the tool: per-line decode warnings, file
// read/write events, and debug-level frame dumps.
//
// # Log Levels
//
//   - Debug: hex dumps of every recovered frame
//   - Info: file read/write events and run summaries
//   - Warn: malformed log lines that were skipped
//   - Error: file-level failures
//
// # Configuration
//
// The CLI initializes logging at "warn" by default so malformed-line
// warnings are always visible. The level can be raised via the
// --log-level flag or the UBXLIB_LOG_LEVEL environment variable; when
// initialized with no level at all (library use, tests), logging is
// silent.
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
