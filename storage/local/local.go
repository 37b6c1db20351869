package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/hupe1980/flowstore/core"
	"github.com/hupe1980/flowstore/logging"
	"github.com/hupe1980/flowstore/storage"
)

// Ensure Store implements the interface.
var _ core.FileStore = (*Store)(nil)

// Options configures construction of a local disk Store.
type Options struct {
	// Logger receives operation and error events. Logging is advisory only
	// and never changes the outcome of an operation. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Store persists flow files on local disk under root/<flowID>/<fileName>.
// Flow directories are created lazily on first save; the store never removes
// the root itself and never writes outside a flow subdirectory.
//
// Every blocking filesystem call runs on its own worker goroutine so the
// calling goroutine suspends without stalling other work scheduled on the
// same runtime. The store provides no cross-call ordering: concurrent saves
// to the same key race at the filesystem level and last write wins. Callers
// needing stronger guarantees must serialize externally.
type Store struct {
	dataDir  string
	sessions core.SessionStore
	logger   logging.Logger
	state    storage.State
}

// New resolves the root directory from the settings provider and returns a
// ready store. The session store is carried for wiring parity with other
// backends; the storage logic itself never touches it. No disk I/O happens
// during construction.
func New(settings core.SettingsProvider, sessions core.SessionStore, optFns ...func(o *Options)) *Store {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store{
		dataDir:  settings.DataDir(),
		sessions: sessions,
		logger:   opts.Logger,
		state:    storage.StateInitializing,
	}
	s.state = storage.StateReady

	return s
}

// State reports the lifecycle state. All data operations require StateReady;
// calling them earlier is a programming error the store does not detect.
func (s *Store) State() storage.State { return s.state }

// BuildFullPath returns the path a file would occupy for the given flow and
// file name. It is a pure function of its inputs and the configured root:
// no directory or file is created and existence is never checked.
func (s *Store) BuildFullPath(flowID, fileName string) string {
	return filepath.Join(s.dataDir, flowID, fileName)
}

// Save writes data as the full contents of root/flowID/fileName, overwriting
// any existing file. Missing intermediate directories are created; an already
// existing flow directory is not an error, so concurrent saves racing to
// create the same directory are harmless. There is no atomic-rename step: a
// crash mid-write may leave a truncated file.
func (s *Store) Save(ctx context.Context, flowID, fileName string, data []byte) error {
	folder := filepath.Join(s.dataDir, flowID)
	filePath := filepath.Join(folder, fileName)

	err := run(ctx, func() error {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filePath, data, 0o644)
	})
	if err != nil {
		err = classify(err, flowID, fileName)
		s.logger.Error("Error saving file %s in flow %s: %v", fileName, flowID, err)
		return err
	}

	s.logger.Info("File %s saved successfully in flow %s.", fileName, flowID)
	return nil
}

// Get returns the full contents of root/flowID/fileName. Existence is checked
// first; a missing file yields ErrNotFound identifying the file and flow.
// There is no partial-read surface; reads are always whole-file.
func (s *Store) Get(ctx context.Context, flowID, fileName string) ([]byte, error) {
	filePath := filepath.Join(s.dataDir, flowID, fileName)

	var content []byte
	err := run(ctx, func() error {
		if _, statErr := os.Stat(filePath); statErr != nil {
			return statErr
		}
		var readErr error
		content, readErr = os.ReadFile(filePath)
		return readErr
	})
	if err != nil {
		err = classify(err, flowID, fileName)
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("File %s not found in flow %s.", fileName, flowID)
		} else {
			s.logger.Error("Error retrieving file %s in flow %s: %v", fileName, flowID, err)
		}
		return nil, err
	}

	s.logger.Debug("File %s retrieved successfully from flow %s.", fileName, flowID)
	return content, nil
}

// List returns the names of the regular files under root/flowID. Nested
// directories are not part of a flow's file set and are skipped. Order
// follows the underlying directory enumeration and is not part of the
// contract. A missing flow directory yields ErrNotFound.
func (s *Store) List(ctx context.Context, flowID string) ([]string, error) {
	folder := filepath.Join(s.dataDir, flowID)

	var names []string
	err := run(ctx, func() error {
		info, statErr := os.Stat(folder)
		if statErr != nil || !info.IsDir() {
			return fmt.Errorf("%w: flow %s directory does not exist", storage.ErrNotFound, flowID)
		}
		entries, readErr := os.ReadDir(folder)
		if readErr != nil {
			return readErr
		}
		names = make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			names = append(names, e.Name())
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Flow %s directory does not exist.", flowID)
			return nil, err
		}
		err = classifyFlow(err, flowID)
		s.logger.Error("Error listing files in flow %s: %v", flowID, err)
		return nil, err
	}

	s.logger.Info("Listed %d files in flow %s.", len(names), flowID)
	return names, nil
}

// Delete removes root/flowID/fileName if it exists. A missing target is
// logged as a warning but completes successfully; Delete is idempotent and
// never fails for an absent file.
func (s *Store) Delete(ctx context.Context, flowID, fileName string) error {
	filePath := filepath.Join(s.dataDir, flowID, fileName)

	removed := false
	err := run(ctx, func() error {
		if _, statErr := os.Stat(filePath); statErr != nil {
			if errors.Is(statErr, fs.ErrNotExist) {
				return nil
			}
			return statErr
		}
		removed = true
		return os.Remove(filePath)
	})
	if err != nil {
		err = classify(err, flowID, fileName)
		s.logger.Error("Error deleting file %s in flow %s: %v", fileName, flowID, err)
		return err
	}

	if removed {
		s.logger.Info("File %s deleted successfully from flow %s.", fileName, flowID)
	} else {
		s.logger.Warn("Attempted to delete non-existent file %s in flow %s.", fileName, flowID)
	}
	return nil
}

// Teardown is a no-op for local disk storage; there are no buffers to flush
// or handles to close. Present for symmetry with backends that need cleanup
// and safe to call multiple times.
func (s *Store) Teardown(context.Context) error { return nil }

// run executes fn on a worker goroutine and suspends the caller until the
// work completes or ctx is cancelled. Cancellation does not interrupt the
// worker: the filesystem operation may still complete after the caller has
// returned, and no cleanup of partially written files is attempted.
func run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// classify maps a filesystem failure onto the storage error taxonomy, keeping
// the original cause in the message. Context cancellation passes through
// unmapped so callers can distinguish it from storage failures.
func classify(err error, flowID, fileName string) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: file %s not found in flow %s", storage.ErrNotFound, fileName, flowID)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: file %s in flow %s: %v", storage.ErrPermissionDenied, fileName, flowID, err)
	case errors.Is(err, syscall.EISDIR):
		return fmt.Errorf("%w: file %s in flow %s: %v", storage.ErrIsDirectory, fileName, flowID, err)
	default:
		return fmt.Errorf("%w: file %s in flow %s: %v", storage.ErrIO, fileName, flowID, err)
	}
}

// classifyFlow is the flow-level counterpart of classify, used by operations
// that address a whole flow directory rather than a single file.
func classifyFlow(err error, flowID string) error {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: flow %s: %v", storage.ErrPermissionDenied, flowID, err)
	default:
		return fmt.Errorf("%w: flow %s: %v", storage.ErrIO, flowID, err)
	}
}
