package tracer

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/tempo-demo/logger"
)

func testConfig() Config {
	return Config{
		ServiceName: "fx-test",
		AppEnv:      "test",
		Endpoint:    "http://localhost:4318",
		Headers:     AuthHeaders("user", "pass"),
	}
}

func TestFXModule_ClientAndInterfaceAreShared(t *testing.T) {
	t.Parallel()
	var (
		client *TracerClient
		tr     Tracer
	)

	app := fxtest.New(t,
		FXModule,
		fx.Provide(testConfig),
		fx.Populate(&client, &tr),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, client)
	assert.Same(t, client, tr.(*TracerClient))
}

func TestFXModule_InvalidEndpointFailsStartup(t *testing.T) {
	t.Parallel()

	app := fx.New(
		FXModule,
		fx.Provide(func() Config { return Config{ServiceName: "fx-test", Endpoint: "::bad::"} }),
		fx.NopLogger,
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), ErrInvalidEndpoint.Error())
}

func TestFXModule_StopExportsPendingSpans(t *testing.T) {
	t.Parallel()
	collector := &fakeCollector{}
	srv := httptest.NewServer(collector)
	defer srv.Close()

	core, logs := observer.New(logger.TraceLevel)
	log := logger.NewFromCore(core, logger.ResolveFilter("tempo_demo=info"), "", false)

	var client *TracerClient
	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			cfg := testConfig()
			cfg.Endpoint = srv.URL
			return cfg
		}),
		fx.Provide(func() logger.Logger { return log }),
		fx.Populate(&client),
	)
	app.RequireStart()

	_, span := client.StartSpan(context.Background(), "pending")
	span.End()
	assert.Empty(t, collector.all(), "spans are batched until shutdown")

	app.RequireStop()

	require.Len(t, collector.all(), 1)
	assert.Equal(t, BasicAuthHeader("user", "pass"), collector.all()[0].authorization)
	assert.Equal(t, 1, logs.FilterMessage("shutting down tracer").Len())
}

func TestRegisterTracerLifecycle_NilTracer(t *testing.T) {
	t.Parallel()
	client := &TracerClient{tracer: nil}

	app := fxtest.New(t,
		fx.Supply(client),
		fx.Invoke(RegisterTracerLifecycle),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}
