// Package core provides the foundational domain types and interfaces used by
// flowstore. It defines the core abstractions for:
//
//   - FileStore (flow-scoped file persistence with pluggable backends)
//   - Sessions (caller contexts passed through to store constructors)
//   - SettingsProvider (the configuration surface a store reads once)
//
// The package intentionally keeps implementation concerns (filesystems,
// concrete backends, wiring) out of scope, exposing small interfaces to enable
// custom backends and extensions. Callers should depend on these interfaces
// rather than concrete types so they can substitute alternative persistence
// layers in tests or production.
package core
