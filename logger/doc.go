// Package logger provides structured logging for the service.
//
// It wraps Uber's zap with a small level-method API, a per-target verbosity
// Filter and an optional bridge that mirrors context-aware log entries onto
// the active OpenTelemetry span as events.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FXModule: Provides both *LoggerClient and Logger interface for dependency injection
//
// # Targets and Filters
//
// Every logger has a target, its zap name. The client returned by
// NewLoggerClient is named AppTarget ("tempo_demo"); Named appends a
// dotted component ("tempo_demo.server") and Target selects an absolute name
// ("gin", "gin.rejection").
//
// A Filter is a comma separated list of directives:
//
//	tempo_demo=info,gin=debug,gin.rejection=trace
//
// Each directive enables its target and every dotted descendant from the
// given level upward; the longest matching directive wins. A bare level
// ("warn") sets the default for unmatched targets, otherwise they log at
// error. The filter is read from LOG_FILTER by FilterFromEnv and falls back
// to DefaultFilter when the variable is unset or invalid.
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Filter:        logger.FilterFromEnv().String(),
//		EnableTracing: true,
//		ServiceName:   "tempo-demo",
//	})
//
//	log.Info("listening on 127.0.0.1:3000", nil)
//	log.Target("gin").DebugWithContext(ctx, "request", nil, map[string]interface{}{
//		"status": 200,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{Filter: logger.DefaultFilter}
//		}),
//	)
//
// # Logging Levels
//
//	logger.Trace   // "trace", encoded as TRACE
//	logger.Debug   // "debug"
//	logger.Info    // "info"
//	logger.Warning // "warning", "warn" is accepted as well
//	logger.Error   // "error"
//	logger.Off     // "off", disables a target
//
// Fatal and FatalWithContext call os.Exit(1) after logging.
//
// # Tracing Integration
//
// When EnableTracing is set, the *WithContext methods add trace_id and
// span_id fields for the span active in ctx, and record the entry as a span
// event named after the message with "level", "target", "error" and the
// supplied fields as attributes. Entries suppressed by the filter are
// neither written nor recorded.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
