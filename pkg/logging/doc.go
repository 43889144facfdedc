// Package logging provides structured logging utilities for the cocktail explorer.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so the server and the CLI log the same way: JSON to stderr, a module and
// version attribute on every record, and source location at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: cache hits and misses, upstream request detail, source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: degraded outcomes such as skipped lookups or an unreadable favorites file
//   - ERROR: failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cocktaild", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cocktail", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug cocktaild
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
