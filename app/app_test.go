package app

import (
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/tempo-demo/config"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

type export struct {
	path          string
	authorization string
}

// collector records the OTLP exports it receives.
type collector struct {
	mu      sync.Mutex
	exports []export
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	c.mu.Lock()
	c.exports = append(c.exports, export{path: r.URL.Path, authorization: r.Header.Get("Authorization")})
	c.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func (c *collector) all() []export {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]export(nil), c.exports...)
}

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		Collector: config.Settings{Username: "user", Password: "pass", Endpoint: endpoint},
		Server:    config.ServerConfig{Addr: "127.0.0.1:0", DrainTimeout: time.Second},
		Telemetry: config.TelemetryConfig{ServiceName: "tempo-demo-test", Environment: "test"},
	}
}

func TestNew_MissingSettingsFailsBeforeBuild(t *testing.T) {
	for _, key := range []string{"OTEL_TEMPO_USERNAME", "OTEL_TEMPO_PASSWORD", "OTEL_TEMPO_ENDPOINT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	app, coordinator, err := New(Options{})

	require.ErrorIs(t, err, config.ErrMissingSetting)
	assert.Nil(t, app)
	assert.Nil(t, coordinator)
}

func TestNewWithConfig_InvalidEndpoint(t *testing.T) {
	app, _, err := NewWithConfig(testConfig("collector:4318"), Options{})

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), tracer.ErrInvalidEndpoint.Error())
}

func TestNewWithConfig_AddrOverride(t *testing.T) {
	cfg := testConfig("collector:4318")
	_, _, _ = NewWithConfig(cfg, Options{Addr: "127.0.0.1:4000"})
	assert.Equal(t, "127.0.0.1:4000", cfg.Server.Addr)
}
