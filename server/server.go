package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/jongio/uri-core/config"
	"github.com/jongio/uri-core/logutil"
	"github.com/jongio/uri-core/uri"
)

const (
	parsePath   = "/v1/parse"
	healthPath  = "/healthz"
	metricsPath = "/metrics"
)

// Options configures a Server.
type Options struct {
	Addr            string
	PathDelimiter   string  // used when a request does not name a delimiter
	RateLimit       float64 // requests per second, <= 0 disables limiting
	Burst           int
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	Metrics         bool
}

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Addr:            cfg.Server.Addr,
		PathDelimiter:   cfg.PathDelimiter,
		RateLimit:       cfg.Server.Rate(),
		Burst:           cfg.Server.Burst,
		ReadTimeout:     cfg.Server.ReadTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Metrics:         cfg.Server.MetricsEnabled(),
	}
}

// Server is the HTTP parse service.
type Server struct {
	opts    Options
	log     *logutil.ComponentLogger
	handler http.Handler
}

// New creates a Server. Zero-valued options fall back to sensible defaults.
func New(opts Options) *Server {
	if opts.PathDelimiter == "" {
		opts.PathDelimiter = uri.DefaultPathDelimiter
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}

	s := &Server{
		opts: opts,
		log:  logutil.NewLogger("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(parsePath, s.handleParse)
	mux.HandleFunc(healthPath, s.handleHealth)
	if opts.Metrics {
		mux.Handle(metricsPath, promhttp.Handler())
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst)
	}

	s.handler = requestIDMiddleware(s.loggingMiddleware(s.rateLimitMiddleware(limiter, mux)))
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	s.log.Info("server listening", "addr", ln.Addr().String(), "metrics", s.opts.Metrics, "rate_limit", s.opts.RateLimit)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
