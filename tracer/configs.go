package tracer

import (
	"net/http"
	"time"

	"github.com/aalemi-dev/tempo-demo/logger"
)

const (
	// DefaultExportTimeout bounds a single span batch export, retries included.
	DefaultExportTimeout = 3 * time.Second

	// DefaultMaxEventsPerSpan caps the events (including bridged log records)
	// retained on a single span.
	DefaultMaxEventsPerSpan = 64

	// DefaultMaxAttributesPerSpan caps the attributes retained on a single span.
	DefaultMaxAttributesPerSpan = 16

	// DefaultTracesPath is appended to collector endpoints that carry no
	// path of their own.
	DefaultTracesPath = "/v1/traces"
)

// Config defines the configuration for the OpenTelemetry tracer.
// It controls service identification, the collector the spans are shipped
// to, and the limits applied to every span.
type Config struct {
	// ServiceName is reported as the "service.name" resource attribute.
	// It should be a stable name that identifies the service in the
	// trace backend.
	ServiceName string

	// AppEnv is reported as the "environment" resource attribute.
	//
	// Example values: "dev", "staging", "production"
	AppEnv string

	// Endpoint is the full URL of the OTLP/HTTP collector, e.g.
	// "https://tempo.example.com/otlp". When the URL has no path (or only
	// "/"), DefaultTracesPath is used.
	//
	// The URL is validated when the pipeline is built, not before.
	Endpoint string

	// Headers are sent with every export request. The collector credential
	// travels here as the "Authorization" entry; see AuthHeaders.
	Headers map[string]string

	// Timeout bounds one export request. Zero means DefaultExportTimeout.
	Timeout time.Duration

	// HTTPClient is the transport used for export requests. When nil, a
	// retrying client built by NewTransportClient is used.
	HTTPClient *http.Client

	// MaxEventsPerSpan overrides DefaultMaxEventsPerSpan when positive.
	MaxEventsPerSpan int

	// MaxAttributesPerSpan overrides DefaultMaxAttributesPerSpan when positive.
	MaxAttributesPerSpan int

	// Logger receives transport retry diagnostics. Optional.
	Logger logger.Logger
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultExportTimeout
}

func (c Config) maxEvents() int {
	if c.MaxEventsPerSpan > 0 {
		return c.MaxEventsPerSpan
	}
	return DefaultMaxEventsPerSpan
}

func (c Config) maxAttributes() int {
	if c.MaxAttributesPerSpan > 0 {
		return c.MaxAttributesPerSpan
	}
	return DefaultMaxAttributesPerSpan
}
