package core

import (
	"sync"
	"time"
)

// Session represents a logical caller context tracking mutable key/value
// state plus creation metadata. It is safe for concurrent access. Stores take
// a SessionStore at construction so wiring layers can associate flow activity
// with a session; the storage logic itself never inspects it.
//
// Contract:
//   - State mutations update the Updated timestamp
//   - Clone performs deep copies of maps for safe divergence.
type Session struct {
	ID       string                 `json:"id"`
	State    map[string]interface{} `json:"state"`
	Created  time.Time              `json:"created"`
	Updated  time.Time              `json:"updated"`
	Metadata map[string]string      `json:"metadata"`
	mu       sync.RWMutex
}

// NewSession creates a new session with the given ID.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, State: map[string]interface{}{}, Created: now, Updated: now, Metadata: map[string]string{}}
}

// GetState returns the value and existence flag for a state key.
func (s *Session) GetState(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.State[key]
	return v, ok
}

// SetState sets a key/value pair in session state updating the Updated timestamp.
func (s *Session) SetState(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State[key] = value
	s.Updated = time.Now()
}

// Clone returns a deep copy of the session safe for external mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := &Session{
		ID:       s.ID,
		State:    make(map[string]interface{}, len(s.State)),
		Created:  s.Created,
		Updated:  s.Updated,
		Metadata: make(map[string]string, len(s.Metadata)),
	}
	for k, v := range s.State {
		cp.State[k] = v
	}
	for k, v := range s.Metadata {
		cp.Metadata[k] = v
	}
	return cp
}

// SessionStore defines the interface for session persistence. Implementations
// should be thread-safe. The local file backend only carries a SessionStore
// through its constructor; richer backends may use it to record activity.
type SessionStore interface {
	// Get returns an existing session (or creates one lazily).
	Get(sessionID string) (*Session, error)

	// Create forces the creation (or overwriting) of a session with the given id.
	Create(sessionID string) (*Session, error)

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(sessionID string) error
}
