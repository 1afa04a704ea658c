package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It provides a simplified interface to the underlying Zap logger,
// with per-target filtering and span event bridging on top.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, already named after the
	// client's target.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// base is the unnamed logger targets are derived from.
	base *zap.Logger

	// filter is the expression the client was built with.
	filter Filter

	// tracingEnabled indicates whether tracing integration is enabled.
	// When true, context-aware methods add trace/span IDs to log entries
	// and record the entry as an event on the active span.
	tracingEnabled bool
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding ("TRACE", "INFO", "ERROR", ...)
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - A Filter deciding, per logger name, which levels are written
//   - Output directed to stderr
//
// The returned client is named cfg.Name (AppTarget by default). Use Named for
// sub-components and Target for loggers owned by third-party code such as
// the HTTP framework.
//
// If initialization fails, the function will call log.Fatal to terminate the application.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Filter:        logger.FilterFromEnv().String(),
//	    ServiceName:   "tempo-demo",
//	    EnableTracing: true,
//	})
//	log.Info("listening", nil, map[string]interface{}{"addr": "127.0.0.1:3000"})
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.NameKey = "target"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = encodeLevel
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	filter := resolveConfigFilter(cfg)

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(TraceLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// Default to 1 if not set, which works for direct usage of the wrapper.
	// One more frame is skipped for the wrapper's internal dispatch.
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}
	callerSkip++

	base, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(callerSkip),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return newFilterCore(core, filter)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	return newClient(base, cfg.Name, filter, cfg.EnableTracing)
}

// NewFromCore builds a LoggerClient on top of an existing core, applying
// filter in front of it. Tests use it with zaptest/observer cores.
func NewFromCore(core zapcore.Core, filter Filter, name string, enableTracing bool) *LoggerClient {
	base := zap.New(newFilterCore(core, filter), zap.AddCaller(), zap.AddCallerSkip(2))
	return newClient(base, name, filter, enableTracing)
}

func newClient(base *zap.Logger, name string, filter Filter, enableTracing bool) *LoggerClient {
	if name == "" {
		name = AppTarget
	}
	return &LoggerClient{
		Zap:            base.Named(name),
		base:           base,
		filter:         filter,
		tracingEnabled: enableTracing,
	}
}

func resolveConfigFilter(cfg Config) Filter {
	if cfg.Filter != "" {
		return ResolveFilter(cfg.Filter)
	}
	if cfg.Level != "" {
		if f, err := ParseFilter(cfg.Level); err == nil {
			return f
		}
	}
	return ResolveFilter(DefaultFilter)
}
