package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/aalemi-dev/tempo-demo/config"
	"github.com/aalemi-dev/tempo-demo/logger"
	"github.com/aalemi-dev/tempo-demo/observability"
)

// ErrNotStarted is returned by Shutdown when Start never bound a listener.
var ErrNotStarted = errors.New("server not started")

// Server serves the instrumented handler on a TCP listener.
type Server struct {
	cfg      config.ServerConfig
	srv      *http.Server
	log      logger.Logger
	observer observability.Observer

	mu       sync.Mutex
	listener net.Listener
	served   chan struct{}

	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a Server for handler. observer may be nil.
func New(cfg config.ServerConfig, handler http.Handler, log logger.Logger, observer observability.Observer) *Server {
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultAddr
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = config.DefaultDrainTimeout
	}
	if observer == nil {
		observer = observability.NewNoOpObserver()
	}

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:      log,
		observer: observer,
	}
}

// Start binds the listener and serves in the background. A bind failure is
// returned and nothing is served.
func (s *Server) Start(ctx context.Context) error {
	start := time.Now()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	observability.Notify(s.observer, observability.OperationContext{
		Component: "server",
		Operation: "start",
		Resource:  s.cfg.Addr,
		Duration:  time.Since(start),
		Error:     err,
	})
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.cfg.Addr, err)
	}

	served := make(chan struct{})
	s.mu.Lock()
	s.listener = ln
	s.served = served
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("listening on %s", ln.Addr()), nil)

	go func() {
		defer close(served)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server stopped unexpectedly", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the drain timeout and ctx. Only the first call drains; later
// calls return its result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.shutdownErr = s.drain(ctx)
	})
	return s.shutdownErr
}

func (s *Server) drain(ctx context.Context) error {
	s.mu.Lock()
	served := s.served
	s.mu.Unlock()
	if served == nil {
		return ErrNotStarted
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DrainTimeout)
	defer cancel()

	start := time.Now()
	err := s.srv.Shutdown(ctx)
	if err == nil {
		<-served
	}

	observability.Notify(s.observer, observability.OperationContext{
		Component: "server",
		Operation: "drain",
		Resource:  s.Addr(),
		Duration:  time.Since(start),
		Error:     err,
	})
	if err != nil {
		s.log.Warn("drain window elapsed, closing remaining connections", err)
		_ = s.srv.Close()
		return fmt.Errorf("failed to drain server: %w", err)
	}

	s.log.Info("server drained", nil)
	return nil
}
