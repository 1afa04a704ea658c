package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration and in filter directives.
const (
	// Trace is the most verbose level, below Debug. It is used for
	// per-request diagnostics such as rejected routes.
	Trace = "trace"

	// Debug is intended for development and troubleshooting.
	Debug = "debug"

	// Info is the standard level for general operational information.
	Info = "info"

	// Warning is for potential issues that aren't errors. "warn" is
	// accepted as an alias.
	Warning = "warning"

	// Error is for error conditions.
	Error = "error"

	// Off disables a target entirely.
	Off = "off"
)

// AppTarget is the logger name used for the application's own
// instrumentation. Directives for "tempo_demo" match it and every
// logger derived from it with Named.
const AppTarget = "tempo_demo"

// Config defines the configuration structure for the logger.
type Config struct {
	// Filter is a comma separated list of directives selecting the minimum
	// level per logger target, e.g. "tempo_demo=info,gin=debug". A bare
	// level ("warn") sets the default for targets no directive matches.
	//
	// When empty, Level is used as the bare default. When both are empty
	// or Filter cannot be parsed, DefaultFilter applies.
	Filter string

	// Level is a single minimum level applied to every target. It is only
	// consulted when Filter is empty.
	Level string

	// EnableTracing controls whether context-aware logging methods add
	// "trace_id" and "span_id" fields and mirror the record as an event on
	// the active span.
	EnableTracing bool

	// ServiceName is used to populate the "service" field in log entries.
	ServiceName string

	// Name is the target of the logger returned by NewLoggerClient.
	// Defaults to AppTarget.
	Name string

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	// This is useful when you have wrapper layers around the logger.
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int
}
