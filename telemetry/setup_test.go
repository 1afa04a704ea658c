package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/tracer"
)

// resetGlobals clears the one-shot guard and restores every global Install
// touches once the test ends.
func resetGlobals(t *testing.T) {
	t.Helper()
	installed.Store(false)

	tp := otel.GetTracerProvider()
	prop := otel.GetTextMapPropagator()
	handler := otel.GetErrorHandler()
	debugPrint := gin.DebugPrintFunc
	debugRoute := gin.DebugPrintRouteFunc
	t.Cleanup(func() {
		installed.Store(false)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
		otel.SetErrorHandler(handler)
		gin.DebugPrintFunc = debugPrint
		gin.DebugPrintRouteFunc = debugRoute
		zap.ReplaceGlobals(zap.NewNop())
	})
}

func newParts(t *testing.T) (*tracer.TracerClient, *logger.LoggerClient, *observer.ObservedLogs) {
	t.Helper()
	tc := tracer.NewClientWithExporter(tracer.Config{ServiceName: "test"}, tracetest.NewInMemoryExporter())
	t.Cleanup(func() { _ = tc.Shutdown(context.Background()) })

	core, logs := observer.New(logger.TraceLevel)
	return tc, logger.NewFromCore(core, logger.ResolveFilter(logger.DefaultFilter), "", true), logs
}

func TestCompose_Incomplete(t *testing.T) {
	tc, log, _ := newParts(t)

	_, err := Compose(nil, log)
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Compose(tc, nil)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestCompose_UsesLoggerFilter(t *testing.T) {
	tc, log, _ := newParts(t)

	s, err := Compose(tc, log)
	require.NoError(t, err)
	assert.Equal(t, logger.DefaultFilter, s.Filter().String())
	assert.Same(t, tc, s.Tracer())
	assert.Same(t, log, s.Logger())
}

func TestInstall_OnlyOnce(t *testing.T) {
	resetGlobals(t)
	tc, log, _ := newParts(t)

	s, err := Compose(tc, log)
	require.NoError(t, err)

	require.NoError(t, s.Install())
	assert.True(t, Installed())

	err = s.Install()
	assert.True(t, errors.Is(err, ErrAlreadyInstalled))

	other, err := Compose(tc, log)
	require.NoError(t, err)
	assert.ErrorIs(t, other.Install(), ErrAlreadyInstalled)
}

func TestInstall_RegistersGlobals(t *testing.T) {
	resetGlobals(t)
	tc, log, _ := newParts(t)

	s, err := Compose(tc, log)
	require.NoError(t, err)
	require.NoError(t, s.Install())

	assert.Same(t, tc.Provider(), otel.GetTracerProvider())
	assert.ElementsMatch(t,
		propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}).Fields(),
		otel.GetTextMapPropagator().Fields(),
	)
	assert.Same(t, log.Zap, zap.L())
}

func TestInstall_RoutesGinDiagnostics(t *testing.T) {
	resetGlobals(t)
	tc, log, logs := newParts(t)

	s, err := Compose(tc, log)
	require.NoError(t, err)
	require.NoError(t, s.Install())

	gin.DebugPrintFunc("[WARNING] Running in %q mode\n", "debug")
	gin.DebugPrintRouteFunc("GET", "/", "main.index", 3)

	ginLogs := logs.FilterLoggerName(GinTarget).All()
	require.Len(t, ginLogs, 2)
	assert.Equal(t, `[WARNING] Running in "debug" mode`, ginLogs[0].Message)
	assert.Equal(t, "route registered", ginLogs[1].Message)
	assert.Equal(t, "/", ginLogs[1].ContextMap()["path"])
}

func TestInstall_RoutesExportErrors(t *testing.T) {
	resetGlobals(t)
	tc, log, logs := newParts(t)

	s, err := Compose(tc, log)
	require.NoError(t, err)
	require.NoError(t, s.Install())

	otel.Handle(errors.New("export failed"))

	otelLogs := logs.FilterLoggerName(OtelTarget).All()
	require.Len(t, otelLogs, 1)
	assert.Equal(t, "export failed", otelLogs[0].ContextMap()["error"])
}

func TestFXModule_SecondAppFails(t *testing.T) {
	resetGlobals(t)
	tc, log, _ := newParts(t)

	provide := fx.Supply(tc, log)

	first := fxtest.New(t, provide, FXModule)
	first.RequireStart()
	defer first.RequireStop()

	second := fx.New(provide, FXModule, fx.NopLogger)
	require.Error(t, second.Err())
	assert.Contains(t, second.Err().Error(), ErrAlreadyInstalled.Error())
}
