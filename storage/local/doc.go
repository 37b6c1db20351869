// Package local provides a local disk backed implementation of the
// core.FileStore interface. Files live under root/<flowID>/<fileName> with
// the root directory supplied by a core.SettingsProvider at construction.
// The directory tree on disk is the data model; no index or metadata is kept
// beside it.
package local
