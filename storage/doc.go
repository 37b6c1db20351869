// Package storage contains concrete implementations of the core.FileStore.
//
// The canonical FileStore interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation packages
// like this one (in-memory, local disk, cloud object stores, etc.) provide
// storage backends that can be swapped without touching calling code.
//
// The package also defines the error taxonomy shared by all backends:
// ErrNotFound, ErrIsDirectory, ErrPermissionDenied and ErrIO. Only lightweight
// implementation specific types should live here. Callers should depend on the
// core interface rather than concrete types so they can substitute alternative
// persistence layers in tests or production.
package storage
