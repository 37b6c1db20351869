package storage

// State tracks a backend's lifecycle. Backends start Initializing and flip to
// Ready at the end of construction; data operations are only valid once Ready.
// Calling an operation before readiness is a programming error, not a
// condition backends detect or recover from.
type State int

const (
	// StateInitializing covers the window between construction start and the
	// readiness signal.
	StateInitializing State = iota
	// StateReady means the backend accepts operations.
	StateReady
)

// String returns the string representation of the lifecycle state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
