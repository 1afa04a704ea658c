// Package observability lets callers watch the service's lifecycle
// operations without coupling the components to a particular sink.
//
// The HTTP server reports "start" and "drain", the shutdown coordinator
// reports the winning "signal" and the trace "flush". Each report is an
// OperationContext carrying the component, operation, resource, duration and
// error.
//
// Implementations:
//   - NoOpObserver discards everything.
//   - LogObserver writes operations through a logger.Logger.
//   - Recorder keeps operations in memory.
//
// Components accept the Observer as an optional dependency and call Notify,
// which ignores a nil Observer:
//
//	start := time.Now()
//	err := srv.Shutdown(ctx)
//	observability.Notify(s.observer, observability.OperationContext{
//	    Component: "server",
//	    Operation: "drain",
//	    Resource:  s.Addr(),
//	    Duration:  time.Since(start),
//	    Error:     err,
//	})
package observability
