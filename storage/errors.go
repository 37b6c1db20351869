package storage

import "errors"

// Sentinel errors shared by all FileStore backends. Backends wrap these with
// contextual detail (file name, flow id, underlying cause); callers match with
// errors.Is rather than inspecting messages.
var (
	// ErrNotFound is returned when the requested flow directory or file does
	// not exist in the underlying store.
	ErrNotFound = errors.New("file not found")

	// ErrIsDirectory is returned when the target file name collides with an
	// existing directory entry.
	ErrIsDirectory = errors.New("target is a directory")

	// ErrPermissionDenied is returned when the underlying storage denies the
	// operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO covers any other underlying storage failure (disk full,
	// corruption, transient device errors).
	ErrIO = errors.New("i/o error")
)
