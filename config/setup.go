package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

var (
	// ErrMissingSetting is returned when a required variable is absent.
	ErrMissingSetting = errors.New("missing required setting")

	// ErrInvalidSetting is returned when a variable cannot be parsed.
	ErrInvalidSetting = errors.New("invalid setting")
)

// Load reads the whole configuration from the environment.
func Load() (*Config, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	cfg := Config{Collector: settings}
	if err := process(&cfg.Server); err != nil {
		return nil, err
	}
	if err := process(&cfg.Telemetry); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSettings reads the collector credentials and endpoint.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := process(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func process(spec interface{}) error {
	err := envconfig.Process("", spec)
	if err == nil {
		return nil
	}

	var parseErr *envconfig.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return fmt.Errorf("%w: %v", ErrMissingSetting, err)
}

// Redacted returns the settings as log fields with the password masked.
func (s Settings) Redacted() map[string]interface{} {
	password := ""
	if s.Password != "" {
		password = "****"
	}
	return map[string]interface{}{
		"username": s.Username,
		"password": password,
		"endpoint": s.Endpoint,
	}
}

// LoggerConfig derives the logger configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Filter:        c.Telemetry.LogFilter,
		EnableTracing: true,
		ServiceName:   c.Telemetry.ServiceName,
	}
}

// TracerConfig derives the trace pipeline configuration. The Authorization
// header is encoded here and the credentials are not kept afterwards.
func (c *Config) TracerConfig() tracer.Config {
	return tracer.Config{
		ServiceName: c.Telemetry.ServiceName,
		AppEnv:      c.Telemetry.Environment,
		Endpoint:    c.Collector.Endpoint,
		Headers:     tracer.AuthHeaders(c.Collector.Username, c.Collector.Password),
		Timeout:     tracer.DefaultExportTimeout,
	}
}
