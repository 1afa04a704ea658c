package tracer

import (
	"context"
	"net/http"
)

// Tracer provides span creation and trace context propagation.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a new span with the given name.
	// The span is attached to the parent span in the context (if any).
	// Always call span.End() when the operation completes (typically via defer).
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier extracts trace context from the given context as a map of headers.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects trace context from headers into the given context.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context

	// InjectHTTP writes the trace context of ctx into an HTTP header set,
	// e.g. the headers of an outgoing response.
	InjectHTTP(ctx context.Context, h http.Header)
}

// Span represents a timed unit of work. Spans started from a context that
// already carries a span become its children.
type Span interface {
	// End completes the span. It's recommended to defer this call
	// immediately after obtaining the span.
	End()

	// SetAttributes adds key-value pairs of attributes to the span.
	SetAttributes(attrs map[string]interface{})

	// AddEvent records a named, timestamped event on the span.
	AddEvent(name string, attrs map[string]interface{})

	// RecordError marks the span as failed and records err on it.
	// A nil error is ignored.
	RecordError(err error)
}
