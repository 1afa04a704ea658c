package shutdown

// State is the phase of a Coordinator.
type State int32

const (
	Running State = iota
	ShutdownRequested
	Draining
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShutdownRequested:
		return "shutdown_requested"
	case Draining:
		return "draining"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
