// Package server exposes normalization over HTTP, one value per request.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"github.com/jmylchreest/pctnorm/internal/logger"
	"github.com/jmylchreest/pctnorm/pkg/percent"
)

// Normalizer is the part of *percent.Normalizer the server needs.
type Normalizer interface {
	Normalize(raw string) percent.Result
}

// Options configures the server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	// Logger receives request logs (default: logger.Component("http_server")).
	Logger *slog.Logger
}

// Server serves the normalize API.
type Server struct {
	normalizer Normalizer
	opts       Options
	log        *slog.Logger
	validate   *validator.Validate
	handler    http.Handler
}

// New creates a server. The normalizer is shared by all requests and must
// be safe for concurrent use.
func New(n Normalizer, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 10
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logger.Component("http_server")
	}

	s := &Server{
		normalizer: n,
		opts:       opts,
		log:        log,
		validate:   validator.New(),
	}

	router := httprouter.New()
	s.registerRoutes(router)
	s.handler = requestID(s.logRequests(router))
	return s
}

func (s *Server) registerRoutes(router *httprouter.Router) {
	router.GET("/health", s.health)
	router.GET("/normalize", s.normalizeQuery)
	router.POST("/normalize", s.normalizeBody)
}

// Handler returns the HTTP handler with middleware applied.
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

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
