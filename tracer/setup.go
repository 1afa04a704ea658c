package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// InstrumentationName is the instrumentation scope of spans started through
// TracerClient.
const InstrumentationName = "github.com/aalemi-dev/tempo-demo"

// TracerClient owns the process trace pipeline: a batching
// sdktrace.TracerProvider feeding an OTLP/HTTP exporter.
//
// It is safe for concurrent use. The provider is read-only after
// construction; only Shutdown changes its state.
type TracerClient struct {
	tracer     *sdktrace.TracerProvider
	propagator propagation.TextMapPropagator
}

// NewClient builds the trace pipeline described by cfg and returns a
// TracerClient ready to start spans.
//
// The pipeline is:
//   - an OTLP/HTTP exporter POSTing to cfg.Endpoint with cfg.Headers and a
//     bounded timeout (see ExporterOptions)
//   - a batch span processor exporting off the request path
//   - an always-on sampler and crypto/rand trace and span IDs
//   - span limits of 64 events and 16 attributes unless overridden
//   - a resource carrying "service.name" and "environment"
//
// NewClient does not register anything globally; see telemetry.Subscriber.
// An unusable endpoint or exporter is returned as an error and must be
// treated as fatal by the caller.
//
// Example:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName: "tempo-demo",
//	    AppEnv:      "dev",
//	    Endpoint:    "https://tempo.example.com/otlp",
//	    Headers:     tracer.AuthHeaders(user, password),
//	})
//	if err != nil {
//	    return err
//	}
//	defer tracerClient.Shutdown(context.Background())
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("failed to install trace pipeline: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
	}

	client := otlptracehttp.NewClient(ExporterOptions(cfg)...)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
	}

	return NewClientWithExporter(cfg, exporter), nil
}

// NewClientWithExporter builds the same pipeline as NewClient around an
// already constructed exporter. cfg.Endpoint, Headers, Timeout and
// HTTPClient are ignored.
func NewClientWithExporter(cfg Config, exporter sdktrace.SpanExporter) *TracerClient {
	limits := sdktrace.NewSpanLimits()
	limits.EventCountLimit = cfg.maxEvents()
	limits.AttributeCountLimit = cfg.maxAttributes()

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithIDGenerator(randomIDGenerator{}),
		sdktrace.WithRawSpanLimits(limits),
		sdktrace.WithResource(newResource(cfg)),
	)

	return &TracerClient{
		tracer:     tp,
		propagator: newPropagator(),
	}
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		attribute.String("environment", cfg.AppEnv),
	)
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}
