package config

import (
	"encoding/base64"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

var managedVars = []string{
	"OTEL_TEMPO_USERNAME",
	"OTEL_TEMPO_PASSWORD",
	"OTEL_TEMPO_ENDPOINT",
	"SERVER_ADDR",
	"SERVER_DRAIN_TIMEOUT",
	"OTEL_SERVICE_NAME",
	"APP_ENV",
	"LOG_FILTER",
}

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func setCollector(t *testing.T) {
	t.Helper()
	t.Setenv("OTEL_TEMPO_USERNAME", "user")
	t.Setenv("OTEL_TEMPO_PASSWORD", "pass")
	t.Setenv("OTEL_TEMPO_ENDPOINT", "https://tempo.example.com/otlp")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	setCollector(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Settings{
		Username: "user",
		Password: "pass",
		Endpoint: "https://tempo.example.com/otlp",
	}, cfg.Collector)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultDrainTimeout, cfg.Server.DrainTimeout)
	assert.Equal(t, DefaultServiceName, cfg.Telemetry.ServiceName)
	assert.Equal(t, DefaultEnvironment, cfg.Telemetry.Environment)
	assert.Empty(t, cfg.Telemetry.LogFilter)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	setCollector(t)
	t.Setenv("SERVER_ADDR", "0.0.0.0:8080")
	t.Setenv("SERVER_DRAIN_TIMEOUT", "250ms")
	t.Setenv("OTEL_SERVICE_NAME", "other")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_FILTER", "tempo_demo=debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Server.DrainTimeout)
	assert.Equal(t, "other", cfg.Telemetry.ServiceName)
	assert.Equal(t, "prod", cfg.Telemetry.Environment)
	assert.Equal(t, "tempo_demo=debug", cfg.Telemetry.LogFilter)
}

func TestLoad_MissingRequired(t *testing.T) {
	for _, missing := range []string{"OTEL_TEMPO_USERNAME", "OTEL_TEMPO_PASSWORD", "OTEL_TEMPO_ENDPOINT"} {
		t.Run(missing, func(t *testing.T) {
			clearEnv(t)
			setCollector(t)
			require.NoError(t, os.Unsetenv(missing))

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.ErrorIs(t, err, ErrMissingSetting)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoad_EmptyValuesAccepted(t *testing.T) {
	clearEnv(t)
	t.Setenv("OTEL_TEMPO_USERNAME", "")
	t.Setenv("OTEL_TEMPO_PASSWORD", "")
	t.Setenv("OTEL_TEMPO_ENDPOINT", "http://localhost:4318")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.Username)
	assert.Empty(t, settings.Password)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	setCollector(t)
	t.Setenv("SERVER_DRAIN_TIMEOUT", "soon")

	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidSetting)
}

func TestSettings_Redacted(t *testing.T) {
	t.Parallel()
	fields := Settings{Username: "user", Password: "secret", Endpoint: "http://x"}.Redacted()
	assert.Equal(t, "****", fields["password"])
	assert.Equal(t, "user", fields["username"])
	assert.Equal(t, "http://x", fields["endpoint"])

	assert.Empty(t, Settings{}.Redacted()["password"])
}

func TestTracerConfig(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Collector: Settings{Username: "user", Password: "pass", Endpoint: "http://collector:4318"},
		Telemetry: TelemetryConfig{ServiceName: "svc", Environment: "dev"},
	}

	tc := cfg.TracerConfig()
	assert.Equal(t, "svc", tc.ServiceName)
	assert.Equal(t, "dev", tc.AppEnv)
	assert.Equal(t, "http://collector:4318", tc.Endpoint)
	assert.Equal(t, tracer.DefaultExportTimeout, tc.Timeout)
	require.Len(t, tc.Headers, 1)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
	assert.Equal(t, want, tc.Headers[tracer.AuthorizationHeader])
}

func TestLoggerConfig(t *testing.T) {
	t.Parallel()
	cfg := &Config{Telemetry: TelemetryConfig{ServiceName: "svc", LogFilter: "gin=trace"}}

	lc := cfg.LoggerConfig()
	assert.Equal(t, "gin=trace", lc.Filter)
	assert.Equal(t, "svc", lc.ServiceName)
	assert.True(t, lc.EnableTracing)
}

func TestFXModule(t *testing.T) {
	clearEnv(t)
	setCollector(t)

	var (
		server ServerConfig
		lc     logger.Config
		tc     tracer.Config
	)
	app := fxtest.New(t,
		FXModule,
		fx.Populate(&server, &lc, &tc),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, DefaultAddr, server.Addr)
	assert.Equal(t, DefaultServiceName, lc.ServiceName)
	assert.Equal(t, "https://tempo.example.com/otlp", tc.Endpoint)
}
