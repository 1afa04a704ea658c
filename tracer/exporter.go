package tracer

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"

	"github.com/aalemi-dev/tempo-demo/logger"
)

// ErrInvalidEndpoint is returned when the collector endpoint cannot be used
// to build an export pipeline.
var ErrInvalidEndpoint = errors.New("invalid collector endpoint")

const (
	transportRetryMax     = 2
	transportRetryWaitMin = 100 * time.Millisecond
	transportRetryWaitMax = 500 * time.Millisecond
)

// ExporterOptions translates cfg into OTLP/HTTP exporter options.
//
// It performs no I/O and does not validate the endpoint; a malformed URL is
// reported by NewClient when the pipeline is installed. The SDK retry loop
// is disabled because retries happen in the transport client, and the whole
// exchange is bounded by the client timeout.
func ExporterOptions(cfg Config) []otlptracehttp.Option {
	client := cfg.HTTPClient
	if client == nil {
		client = NewTransportClient(cfg.timeout(), cfg.Logger)
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(tracesURL(cfg.Endpoint)),
		otlptracehttp.WithHeaders(headers),
		otlptracehttp.WithTimeout(cfg.timeout()),
		otlptracehttp.WithRetry(otlptracehttp.RetryConfig{Enabled: false}),
		otlptracehttp.WithHTTPClient(client),
	}
}

// NewTransportClient returns the *http.Client used to POST span batches.
// Failed requests are retried a small number of times; timeout bounds the
// whole exchange including retries.
func NewTransportClient(timeout time.Duration, log logger.Logger) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = transportRetryMax
	rc.RetryWaitMin = transportRetryWaitMin
	rc.RetryWaitMax = transportRetryWaitMax
	if log != nil {
		rc.Logger = retryLogger{log: log}
	} else {
		rc.Logger = nil
	}

	client := rc.StandardClient()
	client.Timeout = timeout
	return client
}

// validateEndpoint checks that endpoint is an absolute http(s) URL.
func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidEndpoint, endpoint)
	}
	return nil
}

// tracesURL appends DefaultTracesPath to endpoints without a path.
func tracesURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = DefaultTracesPath
		return u.String()
	}
	if !strings.HasSuffix(u.Path, DefaultTracesPath) {
		u.Path = strings.TrimSuffix(u.Path, "/") + DefaultTracesPath
	}
	return u.String()
}

// retryLogger adapts logger.Logger to retryablehttp.LeveledLogger.
type retryLogger struct {
	log logger.Logger
}

func (r retryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.log.Error(msg, nil, kvFields(keysAndValues))
}

func (r retryLogger) Info(msg string, keysAndValues ...interface{}) {
	r.log.Info(msg, nil, kvFields(keysAndValues))
}

func (r retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.log.Debug(msg, nil, kvFields(keysAndValues))
}

func (r retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.log.Warn(msg, nil, kvFields(keysAndValues))
}

func kvFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
