// Package settings provides file-based configuration for flowstore. The
// Service reads a TOML settings file (data directory, log level, log format)
// and implements core.SettingsProvider for store construction. Static offers
// a zero-setup provider for tests and embedded callers.
package settings
