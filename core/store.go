package core

import "context"

// FileStore defines the interface for flow-scoped file persistence.
// Implementations map a two-level key (flow id, file name) to stored bytes and
// should be safe for concurrent use. Short method names (Save/Get/List/Delete)
// mirror other store interfaces for consistency.
//
// All data operations accept a context: implementations offload blocking I/O
// so the calling goroutine suspends until the work completes, fails, or the
// context is cancelled. BuildFullPath is pure and performs no I/O.
type FileStore interface {
	// BuildFullPath returns the path a file would occupy for the given flow
	// and file name. It never touches the underlying storage.
	BuildFullPath(flowID, fileName string) string

	// Save writes data as the full contents of the file, overwriting any
	// existing content. The flow's container is created lazily on first save.
	Save(ctx context.Context, flowID, fileName string, data []byte) error

	// Get returns the full contents of the file or storage.ErrNotFound.
	Get(ctx context.Context, flowID, fileName string) ([]byte, error)

	// List returns the file names stored under the flow. Order is whatever
	// the backend's enumeration yields and is not part of the contract.
	List(ctx context.Context, flowID string) ([]string, error)

	// Delete removes the file if present. A missing target is a successful
	// no-op; Delete is idempotent.
	Delete(ctx context.Context, flowID, fileName string) error

	// Teardown releases any backend resources. Safe to call multiple times.
	Teardown(ctx context.Context) error
}

// SettingsProvider supplies the configuration a store reads at construction.
// Keeping the contract this small lets callers back it with a file, env vars
// or a full settings service without the store knowing the difference.
type SettingsProvider interface {
	// DataDir returns the root directory under which all flow data lives.
	DataDir() string
}
