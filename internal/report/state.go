package report

// State is the lifecycle state of the report loop.
type State int32

const (
	// StateStarting covers discovery registration and the online
	// availability publish.
	StateStarting State = iota

	// StateRunning is the periodic sample-and-publish loop.
	StateRunning

	// StateStopping covers the best-effort offline publish.
	StateStopping

	// StateStopped is terminal; the process may exit.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
