package logger

import (
	"context"
)

// Logger is the logging surface used across the service. Every method
// takes a message, an optional error and optional field maps. Entries are
// written only if the filter enables the logger's target at that level.
//
// *LoggerClient implements it.
type Logger interface {
	// Trace logs a message at the most verbose level.
	Trace(msg string, err error, fields ...map[string]interface{})

	// Debug logs diagnostics.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs lifecycle events such as the listener address.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs conditions worth attention, e.g. a shutdown signal.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs failures.
	Error(msg string, err error, fields ...map[string]interface{})

	// Fatal logs and exits with status 1.
	Fatal(msg string, err error, fields ...map[string]interface{})

	// The WithContext variants add trace_id and span_id and record the entry
	// as an event on the span in ctx when tracing is enabled.
	TraceWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	FatalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Named returns a logger for a sub-component of the current target.
	Named(name string) Logger

	// Target returns a logger for an absolute target name.
	Target(name string) Logger
}
