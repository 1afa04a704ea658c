// Package telemetry composes the trace pipeline and the filtered logger into
// the process-wide sink and installs it exactly once.
//
// Install registers the tracer provider and propagator with the otel
// globals, replaces zap's global logger, routes export errors to the "otel"
// target, and routes the HTTP framework's debug output to the "gin" target.
// A second Install in the same process fails with ErrAlreadyInstalled.
package telemetry
