package observability

import "sync"

// NoOpObserver discards every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (NoOpObserver) ObserveOperation(OperationContext) {}

// NewNoOpObserver returns an Observer that discards everything.
func NewNoOpObserver() Observer {
	return NoOpObserver{}
}

// Recorder keeps every observed operation in memory, in order.
type Recorder struct {
	mu         sync.Mutex
	operations []OperationContext
}

// ObserveOperation records the operation.
func (r *Recorder) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, ctx)
}

// Operations returns a copy of the recorded operations.
func (r *Recorder) Operations() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]OperationContext{}, r.operations...)
}

// Names returns "component.operation" for every recorded operation.
func (r *Recorder) Names() []string {
	ops := r.Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Component+"."+op.Operation)
	}
	return names
}

// Notify forwards ctx to o when o is not nil.
func Notify(o Observer, ctx OperationContext) {
	if o != nil {
		o.ObserveOperation(ctx)
	}
}
