package config

import "time"

const (
	// DefaultAddr is the listen address used when neither the flag nor
	// SERVER_ADDR is set.
	DefaultAddr = "127.0.0.1:3000"

	// DefaultDrainTimeout bounds how long the server waits for in-flight
	// requests once shutdown starts.
	DefaultDrainTimeout = 10 * time.Second

	// DefaultServiceName is reported as the service.name resource attribute.
	DefaultServiceName = "tempo-demo"

	// DefaultEnvironment is reported as the environment resource attribute.
	DefaultEnvironment = "dev"
)

// Config holds all process configuration. It is read once at startup.
type Config struct {
	Collector Settings
	Server    ServerConfig
	Telemetry TelemetryConfig
}

// Settings holds the trace collector credentials and endpoint. All three
// variables must be present; an empty value is accepted and passed through.
type Settings struct {
	Username string `envconfig:"OTEL_TEMPO_USERNAME" required:"true"`
	Password string `envconfig:"OTEL_TEMPO_PASSWORD" required:"true"`
	Endpoint string `envconfig:"OTEL_TEMPO_ENDPOINT" required:"true"`
}

// ServerConfig holds HTTP listener configuration.
type ServerConfig struct {
	Addr         string        `envconfig:"SERVER_ADDR" default:"127.0.0.1:3000"`
	DrainTimeout time.Duration `envconfig:"SERVER_DRAIN_TIMEOUT" default:"10s"`
}

// TelemetryConfig holds the resource attributes and the log filter.
type TelemetryConfig struct {
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"tempo-demo"`
	Environment string `envconfig:"APP_ENV" default:"dev"`

	// LogFilter is the raw LOG_FILTER expression. Empty or invalid values
	// resolve to logger.DefaultFilter.
	LogFilter string `envconfig:"LOG_FILTER"`
}
