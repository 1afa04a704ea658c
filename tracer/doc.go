// Package tracer builds the process trace pipeline on top of OpenTelemetry.
//
// A pipeline is an OTLP/HTTP exporter shipping span batches to a remote
// collector, wrapped in a batch span processor, an always-on sampler, a
// crypto/rand ID generator, span limits and a static resource describing the
// service. Exactly one pipeline is expected per process.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: span creation and context propagation
//   - TracerClient struct: concrete implementation, also owning flush/shutdown
//   - Span interface: the operations handlers perform on a span
//   - FXModule: provides both *TracerClient and Tracer, and flushes on stop
//
// # Credentials
//
// Collectors such as Grafana Tempo expect HTTP Basic credentials. The header
// is computed once and handed to the exporter by value:
//
//	headers := tracer.AuthHeaders(settings.Username, settings.Password)
//	// map[Authorization:Basic dXNlcjpwYXNz]
//
// # Basic Usage
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName: "tempo-demo",
//		AppEnv:      "dev",
//		Endpoint:    "https://tempo.example.com/otlp",
//		Headers:     headers,
//	})
//	if err != nil {
//		return err // fatal: do not serve without a pipeline
//	}
//	defer tracerClient.Shutdown(context.Background())
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
// NewClient validates the endpoint and constructs the exporter; nothing is
// sent until the first batch is ready. Export failures never reach request
// handling: the batch processor drops the batch after the transport gives up.
//
// # Thread Safety
//
// All methods on TracerClient and Span are safe for concurrent use.
package tracer
