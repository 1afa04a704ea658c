package observability_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
)

func TestNoOpObserver(t *testing.T) {
	t.Parallel()
	o := observability.NewNoOpObserver()

	assert.NotPanics(t, func() {
		o.ObserveOperation(observability.OperationContext{Component: "server", Operation: "start"})
	})
}

func TestNotify_NilObserver(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		observability.Notify(nil, observability.OperationContext{Component: "server"})
	})
}

func TestRecorder(t *testing.T) {
	t.Parallel()
	r := &observability.Recorder{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observability.Notify(r, observability.OperationContext{Component: "server", Operation: "start"})
		}()
	}
	wg.Wait()

	assert.Len(t, r.Operations(), 10)
	assert.Equal(t, "server.start", r.Names()[0])
}

func TestLogObserver(t *testing.T) {
	t.Parallel()
	filter, err := logger.ParseFilter("tempo_demo=debug")
	require.NoError(t, err)
	core, logs := observer.New(logger.TraceLevel)
	o := observability.NewLogObserver(logger.NewFromCore(core, filter, "", false))

	o.ObserveOperation(observability.OperationContext{
		Component: "server",
		Operation: "drain",
		Resource:  "127.0.0.1:3000",
		Duration:  1500 * time.Millisecond,
		Metadata:  map[string]interface{}{"in_flight": 2},
	})
	o.ObserveOperation(observability.OperationContext{
		Component: "shutdown",
		Operation: "flush",
		Error:     errors.New("deadline exceeded"),
	})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "server drain", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "127.0.0.1:3000", fields["resource"])
	assert.EqualValues(t, 1500, fields["duration_ms"])
	assert.EqualValues(t, 2, fields["in_flight"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "shutdown flush failed", entries[1].Message)
	assert.Equal(t, "deadline exceeded", entries[1].ContextMap()["error"])
}
