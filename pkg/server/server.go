// Package server runs the HTTP endpoint that serves rendered menus, with
// health, readiness and Prometheus endpoints and graceful shutdown.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/metric"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the maximum duration to wait for active connections
	// to close during shutdown.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes caps the size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB

	// MetricsPath is where WithPrometheusMetrics mounts the registry.
	MetricsPath = "/metrics"
)

// Server is an HTTP server whose lifetime is bound to a context.
type Server interface {
	// Serve starts the HTTP server and blocks until the context is canceled.
	// Returns nil on graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning returns true once the socket is bound and until the server stops.
	IsRunning() bool

	// Handler returns the mux wrapped in the request middleware, so it can be
	// exercised without binding a port.
	Handler() http.Handler
}

// ReadinessChecker reports whether a component can serve traffic, e.g.
// whether a menu definition has been loaded.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type server struct {
	mux             *http.ServeMux
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	errLog          *log.Logger
	tlsConfig       *TLSConfig
	mu              sync.RWMutex
	running         bool
	registry        *prometheus.Registry
	metrics         bool
}

// TLSConfig contains the certificate and key file paths for TLS/HTTPS support.
type TLSConfig struct {
	CertFile string // Path to the TLS certificate file
	KeyFile  string // Path to the TLS private key file
}

// Option is a functional option for configuring the Server.
type Option func(*server)

// WithPort sets the port number for the HTTP server.
// If not specified, DefaultPort (9876) is used.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout overrides DefaultReadTimeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout overrides DefaultIdleTimeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets how long in-flight requests get to finish once
// the context is canceled.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithMaxHeaderBytes overrides DefaultMaxHeaderBytes.
func WithMaxHeaderBytes(n int) Option {
	return func(s *server) { s.maxHeaderBytes = n }
}

// WithErrorLogger replaces the logger used by http.Server for internal errors.
func WithErrorLogger(l *log.Logger) Option {
	return func(s *server) { s.errLog = l }
}

// WithRegistry sets the Prometheus registry exposed by WithPrometheusMetrics.
// Components that record metrics should register with the same registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *server) { s.registry = reg }
}

// WithPrometheusMetrics exposes the server's registry at /metrics.
func WithPrometheusMetrics() Option {
	return func(s *server) { s.metrics = true }
}

// WithHandler registers an HTTP handler for the specified pattern.
// Multiple handlers can be registered by calling this option multiple times.
//
// Example:
//
//	srv := server.New(
//	    server.WithHandler("/", site.Handler()),
//	    server.WithHandler("/menu.json", site.TreeHandler()),
//	)
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.mux.Handle(pattern, handler)
	}
}

// WithSimpleHealth adds a liveness endpoint at /healthz that always returns 200 "ok".
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeText(w, http.StatusOK, "ok")
		})
	}
}

// WithReadiness adds /readyz, which returns 503 with the checker's error
// until the checker reports ready.
func WithReadiness(rc ReadinessChecker) Option {
	return func(s *server) {
		s.mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
			if err := rc.Ready(r.Context()); err != nil {
				writeText(w, http.StatusServiceUnavailable, err.Error())
				return
			}
			writeText(w, http.StatusOK, "ok")
		})
	}
}

// WithTLS configures the server to use TLS/HTTPS with the provided certificate and key files.
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(8443),
//	    server.WithTLS(server.TLSConfig{
//	        CertFile: "/path/to/cert.pem",
//	        KeyFile:  "/path/to/key.pem",
//	    }),
//	)
func WithTLS(cfg TLSConfig) Option {
	return func(s *server) {
		s.tlsConfig = &cfg
	}
}

// New creates a new HTTP server with the provided options.
//
// Default configuration:
//   - Port: 9876
//   - ReadTimeout: 10s
//   - WriteTimeout: 10s
//   - IdleTimeout: 60s
//   - ShutdownTimeout: 5s
//   - MaxHeaderBytes: 1 MB
//   - a private Prometheus registry
func New(opts ...Option) Server {
	s := &server{
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
		registry:        prometheus.NewRegistry(),
		errLog:          logger.NewLogLogger(slog.LevelError, false),
	}

	for _, opt := range opts {
		opt(s)
	}

	// mounted last so WithRegistry can come in any order
	if s.metrics {
		s.mux.Handle(MetricsPath, metric.GetHandlerForRegistry(s.registry))
	}

	slog.Info("server initialized",
		"port", s.port,
		"metrics", s.metrics,
		"read_timeout", s.readTimeout,
		"write_timeout", s.writeTimeout)

	return s
}

func (s *server) Handler() http.Handler {
	return withRequestID(s.mux)
}

func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

func (s *server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// Serve starts the HTTP server and blocks until the context is canceled or an error occurs.
//
// One errgroup goroutine serves on a pre-bound listener, the other waits for
// the context and calls Shutdown with the configured grace period.
// http.ErrServerClosed is not reported as an error.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.port),
		Handler:        s.Handler(),
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	listener, err := s.listen(srv.Addr)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// running only after the socket is bound
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server", "grace_period", s.shutdownTimeout)

		shutdownStart := time.Now()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		slog.Info("server shutdown complete", "duration", time.Since(shutdownStart))

		return nil
	})

	return g.Wait()
}

func (s *server) listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	if s.tlsConfig == nil {
		slog.Info("starting server", "addr", addr)
		return listener, nil
	}

	cert, err := tls.LoadX509KeyPair(s.tlsConfig.CertFile, s.tlsConfig.KeyFile)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	slog.Info("starting TLS server", "addr", addr)

	return tls.NewListener(listener, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
