package core

import "github.com/google/uuid"

// NewID returns a new unique identifier suitable for sessions and flows.
func NewID() string { return uuid.NewString() }
