package storage

import (
	"context"
	"fmt"
	"path"
	"sync"
)

// InMemoryStore is a trivial in-process FileStore implementation useful for
// tests, examples and single-process prototypes. It keeps all files in a
// nested map guarded by an RWMutex. Data is copied on save / retrieval to
// avoid accidental external mutation of internal buffers.
//
// Layout: flowID -> fileName -> raw bytes
//
// This implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. For durable storage, use the local disk
// backend (or another persistent implementation) instead.
type InMemoryStore struct {
	mu    sync.RWMutex
	flows map[string]map[string][]byte // flowID -> fileName -> data
}

// NewInMemoryStore returns an empty in-memory file store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{flows: make(map[string]map[string][]byte)}
}

// BuildFullPath returns a virtual path for the flow/file pair. It carries no
// filesystem meaning and exists only to satisfy the FileStore contract.
func (s *InMemoryStore) BuildFullPath(flowID, fileName string) string {
	return path.Join(flowID, fileName)
}

// Save stores (or overwrites) the file bytes for the given flow and name.
// The input slice is copied before storage. The flow bucket is created lazily.
func (s *InMemoryStore) Save(_ context.Context, flowID, fileName string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.flows[flowID]; !exists {
		s.flows[flowID] = make(map[string][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.flows[flowID][fileName] = cp
	return nil
}

// Get returns a copy of the stored file bytes or ErrNotFound.
func (s *InMemoryStore) Get(_ context.Context, flowID, fileName string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.flows[flowID]
	if !ok {
		return nil, fmt.Errorf("%w: file %s in flow %s", ErrNotFound, fileName, flowID)
	}
	data, ok := m[fileName]
	if !ok {
		return nil, fmt.Errorf("%w: file %s in flow %s", ErrNotFound, fileName, flowID)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the file names stored for the flow, or ErrNotFound if the flow
// was never saved to. The slice is a snapshot and safe for caller mutation;
// order is unspecified.
func (s *InMemoryStore) List(_ context.Context, flowID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.flows[flowID]
	if !ok {
		return nil, fmt.Errorf("%w: flow %s", ErrNotFound, flowID)
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names, nil
}

// Delete removes the file if present. Missing flows or files are a no-op;
// Delete never fails for an absent target.
func (s *InMemoryStore) Delete(_ context.Context, flowID, fileName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.flows[flowID]; ok {
		delete(m, fileName)
	}
	return nil
}

// Teardown is a no-op for the in-memory backend. Safe to call multiple times.
func (s *InMemoryStore) Teardown(context.Context) error { return nil }
