package logger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// extractTracingFields returns trace_id and span_id fields for the span
// active in ctx, or nil when tracing is disabled or no span is recording.
func (l *LoggerClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// recordSpanEvent mirrors a log entry onto the span active in ctx. The
// event carries the level, the logger target, the error and the fields.
// Events past the span's event limit are dropped by the SDK.
func (l *LoggerClient) recordSpanEvent(ctx context.Context, lvl zapcore.Level, msg string, err error, fields ...map[string]interface{}) {
	if !l.tracingEnabled || ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("level", levelName(lvl)),
		attribute.String("target", l.Zap.Name()),
	}
	if err != nil {
		attrs = append(attrs, attribute.String("error", err.Error()))
	}
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			attrs = append(attrs, toAttribute(key, value))
		}
	}

	span.AddEvent(msg, trace.WithAttributes(attrs...))
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case bool:
		return attribute.Bool(key, val)
	default:
		return attribute.String(key, fmt.Sprint(val))
	}
}

func levelName(lvl zapcore.Level) string {
	if lvl == TraceLevel {
		return "TRACE"
	}
	return lvl.CapitalString()
}

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

func (l *LoggerClient) log(lvl zapcore.Level, msg string, err error, fields ...map[string]interface{}) {
	if ce := l.Zap.Check(lvl, msg); ce != nil {
		ce.Write(l.convertToZapFields(err, fields...)...)
	}
}

// logWithContext writes the entry and, if the filter let it through, mirrors
// it onto the active span. The span event is recorded before the write so
// that it is not lost when the level terminates the process.
func (l *LoggerClient) logWithContext(ctx context.Context, lvl zapcore.Level, msg string, err error, fields ...map[string]interface{}) {
	ce := l.Zap.Check(lvl, msg)
	if ce == nil {
		return
	}

	l.recordSpanEvent(ctx, lvl, msg, err, fields...)

	zapFields := l.convertToZapFields(err, fields...)
	zapFields = append(zapFields, l.extractTracingFields(ctx)...)
	ce.Write(zapFields...)
}

// Trace logs at the most verbose level.
func (l *LoggerClient) Trace(msg string, err error, fields ...map[string]interface{}) {
	l.log(TraceLevel, msg, err, fields...)
}

// Debug logs a debug-level message.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.log(zapcore.DebugLevel, msg, err, fields...)
}

// Info logs an informational message.
//
// Example:
//
//	log.Info("listening", nil, map[string]interface{}{"addr": addr})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.log(zapcore.InfoLevel, msg, err, fields...)
}

// Warn logs a warning message.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.log(zapcore.WarnLevel, msg, err, fields...)
}

// Error logs an error message.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.log(zapcore.ErrorLevel, msg, err, fields...)
}

// Fatal logs a message and terminates the process with exit code 1.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.log(zapcore.FatalLevel, msg, err, fields...)
}

// TraceWithContext logs at trace level with trace context.
func (l *LoggerClient) TraceWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, TraceLevel, msg, err, fields...)
}

// DebugWithContext logs a debug-level message with trace context.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, zapcore.DebugLevel, msg, err, fields...)
}

// InfoWithContext logs an informational message with trace context.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, zapcore.InfoLevel, msg, err, fields...)
}

// WarnWithContext logs a warning message with trace context.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, zapcore.WarnLevel, msg, err, fields...)
}

// ErrorWithContext logs an error message with trace context.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, zapcore.ErrorLevel, msg, err, fields...)
}

// FatalWithContext logs a message with trace context and terminates the process.
func (l *LoggerClient) FatalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.logWithContext(ctx, zapcore.FatalLevel, msg, err, fields...)
}

// Named returns a logger for a sub-component; its target is the current
// target followed by "." and name.
func (l *LoggerClient) Named(name string) Logger {
	return l.derive(l.Zap.Named(name))
}

// Target returns a logger whose target is exactly name, independent of the
// current one. It is meant for diagnostics emitted on behalf of other
// libraries, e.g. Target("gin").
func (l *LoggerClient) Target(name string) Logger {
	base := l.base
	if base == nil {
		base = l.Zap
	}
	return l.derive(base.Named(name))
}

// Enabled reports whether an entry at lvl would be written.
func (l *LoggerClient) Enabled(lvl zapcore.Level) bool {
	return l.Zap.Check(lvl, "") != nil
}

// Filter returns the filter the client was built with.
func (l *LoggerClient) Filter() Filter {
	return l.filter
}

// Sync flushes buffered entries.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}

func (l *LoggerClient) derive(z *zap.Logger) *LoggerClient {
	return &LoggerClient{
		Zap:            z,
		base:           l.base,
		filter:         l.filter,
		tracingEnabled: l.tracingEnabled,
	}
}
