// Package flowstore provides a high-level façade over the core FileStore and
// service abstractions (settings, sessions & logging) enabling quick wiring of
// flow-scoped file storage. Most applications interact with this package by:
//  1. Creating a FlowStore via New() (optionally overriding default in-memory services)
//  2. Saving, retrieving, listing and deleting flow files through the façade
//  3. Calling Teardown when finished
//
// The façade delegates persistence to the configured core.FileStore backend
// while keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a settings
// service (for a durable local disk backend) and a structured logger.
package flowstore

import (
	"context"

	"github.com/hupe1980/flowstore/core"
	"github.com/hupe1980/flowstore/logging"
	"github.com/hupe1980/flowstore/session"
	"github.com/hupe1980/flowstore/storage"
	"github.com/hupe1980/flowstore/storage/local"
)

// Options configures the FlowStore instance.
type Options struct {
	// Settings supplies the root data directory. When set and no Store
	// override is given, a local disk backend is constructed against it.
	Settings core.SettingsProvider

	// Sessions is passed through to backend constructors
	// (defaults to an in-memory implementation if not provided).
	Sessions core.SessionStore

	// Store overrides the storage backend entirely. When nil, a local disk
	// backend is used if Settings is set, otherwise an in-memory one.
	Store core.FileStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// FlowStore is the high-level façade aggregating the storage backend and services.
type FlowStore struct {
	opts  Options
	store core.FileStore
}

// New creates a new FlowStore instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *FlowStore {
	opts := Options{
		Sessions: session.NewInMemoryStore(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	store := opts.Store
	if store == nil {
		if opts.Settings != nil {
			store = local.New(opts.Settings, opts.Sessions, func(o *local.Options) {
				o.Logger = opts.Logger
			})
		} else {
			store = storage.NewInMemoryStore()
		}
	}

	return &FlowStore{opts: opts, store: store}
}

// Store returns the underlying storage backend.
func (f *FlowStore) Store() core.FileStore { return f.store }

// Sessions returns the session store the backend was wired with.
func (f *FlowStore) Sessions() core.SessionStore { return f.opts.Sessions }

// BuildFullPath returns the path a file would occupy for the given flow and
// file name without touching storage.
func (f *FlowStore) BuildFullPath(flowID, fileName string) string {
	return f.store.BuildFullPath(flowID, fileName)
}

// Save writes data as the full contents of the flow file, overwriting any
// existing content.
func (f *FlowStore) Save(ctx context.Context, flowID, fileName string, data []byte) error {
	return f.store.Save(ctx, flowID, fileName, data)
}

// Get returns the full contents of the flow file or storage.ErrNotFound.
func (f *FlowStore) Get(ctx context.Context, flowID, fileName string) ([]byte, error) {
	return f.store.Get(ctx, flowID, fileName)
}

// List returns the file names stored under the flow.
func (f *FlowStore) List(ctx context.Context, flowID string) ([]string, error) {
	return f.store.List(ctx, flowID)
}

// Delete removes the flow file if present; a missing target is a no-op.
func (f *FlowStore) Delete(ctx context.Context, flowID, fileName string) error {
	return f.store.Delete(ctx, flowID, fileName)
}

// Teardown releases backend resources. Safe to call multiple times.
func (f *FlowStore) Teardown(ctx context.Context) error {
	return f.store.Teardown(ctx)
}
