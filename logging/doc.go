// Package logging provides a minimal logging interface and adapters for flowstore.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the store backends use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	store := local.New(settings, sessions, func(o *local.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available. Logging is advisory
// only and never alters the success or failure of a store operation.
package logging
