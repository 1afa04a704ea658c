package observability

import "time"

// Observer receives notifications about lifecycle operations of the
// service: the HTTP server starting and draining, shutdown signals and the
// final trace flush.
//
// Observers are optional; every component works with a nil Observer.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a completed operation.
type OperationContext struct {
	// Component identifies the package that performed the operation.
	// Examples: "server", "shutdown", "tracer"
	Component string

	// Operation describes what was performed.
	// Examples:
	//   server:   "start", "drain"
	//   shutdown: "signal", "flush"
	Operation string

	// Resource identifies what the operation acted on, such as the listen
	// address or the signal name.
	Resource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	Error error

	// Metadata carries operation specific details (optional).
	Metadata map[string]interface{}
}
