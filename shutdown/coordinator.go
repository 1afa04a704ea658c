package shutdown

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
)

// DefaultFlushTimeout bounds the final trace flush.
const DefaultFlushTimeout = 5 * time.Second

var (
	// ErrSignalUnavailable is returned by New when a listener is missing.
	ErrSignalUnavailable = errors.New("shutdown signal listener unavailable")

	// ErrAlreadyRunning is returned when Wait or Run is called after the
	// coordinator has left the Running state.
	ErrAlreadyRunning = errors.New("shutdown already in progress")
)

// Drainer stops accepting work and waits for in-flight work to finish.
type Drainer interface {
	Shutdown(ctx context.Context) error
}

// Flusher exports buffered telemetry and releases the pipeline.
type Flusher interface {
	Shutdown(ctx context.Context) error
}

// Config holds the Coordinator's collaborators.
type Config struct {
	Interrupt *Listener
	Terminate *Listener

	Server Drainer
	Tracer Flusher

	Logger   logger.Logger
	Observer observability.Observer

	// FlushTimeout bounds the tracer shutdown. Zero means DefaultFlushTimeout.
	FlushTimeout time.Duration
}

// Coordinator runs the shutdown sequence once.
type Coordinator struct {
	cfg   Config
	state atomic.Int32
}

// New returns a Coordinator in the Running state.
func New(cfg Config) (*Coordinator, error) {
	if cfg.Interrupt == nil {
		return nil, fmt.Errorf("%w: interrupt", ErrSignalUnavailable)
	}
	if cfg.Terminate == nil {
		return nil, fmt.Errorf("%w: terminate", ErrSignalUnavailable)
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = DefaultFlushTimeout
	}
	return &Coordinator{cfg: cfg}, nil
}

// State returns the current phase.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Wait blocks until a listener fires or ctx is done. It returns the name of
// the winning listener and leaves the coordinator in ShutdownRequested.
func (c *Coordinator) Wait(ctx context.Context) (string, error) {
	if c.State() != Running {
		return "", ErrAlreadyRunning
	}

	start := time.Now()
	var name string
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.cfg.Interrupt.c:
		name = c.cfg.Interrupt.Name
	case <-c.cfg.Terminate.c:
		name = c.cfg.Terminate.Name
	}

	if !c.state.CompareAndSwap(int32(Running), int32(ShutdownRequested)) {
		return "", ErrAlreadyRunning
	}

	if c.cfg.Logger != nil {
		c.cfg.Logger.Warn("signal received, starting graceful shutdown", nil, map[string]interface{}{
			"signal": name,
		})
	}
	observability.Notify(c.cfg.Observer, observability.OperationContext{
		Component: "shutdown",
		Operation: "signal",
		Resource:  name,
		Duration:  time.Since(start),
	})
	return name, nil
}

// Run waits for a shutdown request, drains the server and flushes the
// tracer. Drain and flush failures are logged, not returned: once a signal
// arrived the exit is graceful. Run returns an error only when ctx ends
// before any signal.
func (c *Coordinator) Run(ctx context.Context) error {
	defer c.stopListeners()

	if _, err := c.Wait(ctx); err != nil {
		return err
	}

	c.state.Store(int32(Draining))
	if c.cfg.Server != nil {
		if err := c.cfg.Server.Shutdown(context.Background()); err != nil {
			c.logError("server drain failed", err)
		}
	}

	c.state.Store(int32(Terminated))
	c.flush()
	return nil
}

func (c *Coordinator) flush() {
	if c.cfg.Tracer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.FlushTimeout)
	defer cancel()

	start := time.Now()
	err := c.cfg.Tracer.Shutdown(ctx)
	observability.Notify(c.cfg.Observer, observability.OperationContext{
		Component: "shutdown",
		Operation: "flush",
		Resource:  "tracer",
		Duration:  time.Since(start),
		Error:     err,
	})
	if err != nil {
		c.logError("trace flush failed", err)
		return
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Info("trace pipeline flushed", nil)
	}
}

func (c *Coordinator) logError(msg string, err error) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Error(msg, err)
	}
}

func (c *Coordinator) stopListeners() {
	c.cfg.Interrupt.Stop()
	c.cfg.Terminate.Stop()
}
