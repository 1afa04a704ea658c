package tracer

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl wraps an OpenTelemetry span behind the Span interface.
type spanImpl struct {
	span traceSpan.Span
}

// End completes the span and hands it to the batch processor.
func (s *spanImpl) End() {
	s.span.End()
}

// SetAttributes converts attrs to OpenTelemetry attributes. Strings, ints,
// int64s, float64s and bools keep their type; anything else is stored via
// fmt.Sprint. Attributes beyond the span limit are dropped by the SDK.
//
// Example:
//
//	span.SetAttributes(map[string]interface{}{
//	    "http.route": "/",
//	    "delay_ms":   100,
//	})
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	s.span.SetAttributes(toAttributes(attrs)...)
}

// AddEvent records a named event on the span.
func (s *spanImpl) AddEvent(name string, attrs map[string]interface{}) {
	s.span.AddEvent(name, traceSpan.WithAttributes(toAttributes(attrs)...))
}

// RecordError records err as a span event and marks the span as failed.
func (s *spanImpl) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func toAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	return attributes
}

// StartSpan starts a span named name as a child of the span carried by ctx,
// or as a new root when ctx carries none. The returned context carries the
// new span; the caller must End it, typically with defer.
//
// Example:
//
//	ctx, span := tracerClient.StartSpan(ctx, "render-index")
//	defer span.End()
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.tracer.Tracer(InstrumentationName).Start(ctx, name)

	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier returns the W3C trace context ("traceparent", and "tracestate"
// / "baggage" when present) of ctx as a header map.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	t.propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext returns ctx extended with the remote trace context
// found in carrier. Spans started from the result join that trace.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return t.propagator.Extract(ctx, propagation.MapCarrier(carrier))
}

// InjectHTTP writes the trace context of ctx into h.
func (t *TracerClient) InjectHTTP(ctx context.Context, h http.Header) {
	t.propagator.Inject(ctx, propagation.HeaderCarrier(h))
}

// Provider returns the underlying tracer provider, for instrumentation
// libraries that accept a trace.TracerProvider.
func (t *TracerClient) Provider() *sdktrace.TracerProvider {
	return t.tracer
}

// Propagator returns the text map propagator used by the client.
func (t *TracerClient) Propagator() propagation.TextMapPropagator {
	return t.propagator
}

// ForceFlush exports every finished span still buffered in the batch
// processor. It blocks until the export completes or ctx is done.
func (t *TracerClient) ForceFlush(ctx context.Context) error {
	if t.tracer == nil {
		return nil
	}
	return t.tracer.ForceFlush(ctx)
}

// Shutdown flushes buffered spans and stops the export pipeline. Spans
// ended afterwards are dropped. Calling Shutdown more than once is safe.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.tracer == nil {
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
