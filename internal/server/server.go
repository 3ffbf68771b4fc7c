// Package server exposes the exporter over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/metrics"
)

// ServiceName names the HTTP spans.
const ServiceName = "scholardraft"

// Default server settings.
const (
	DefaultMaxBodyBytes    = 8 << 20
	DefaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// ExporterSource hands out exporters. *scholardraft.ExporterPool implements it.
type ExporterSource interface {
	Acquire() (*scholardraft.Exporter, error)
	Release(e *scholardraft.Exporter)
}

// Compile-time interface check.
var _ ExporterSource = (*scholardraft.ExporterPool)(nil)

// Options configures a Server.
type Options struct {
	// CORSOrigins enables CORS for these origins. Empty disables CORS.
	CORSOrigins []string
	// MaxBodyBytes bounds request bodies. Zero uses DefaultMaxBodyBytes.
	MaxBodyBytes int64
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	// TracerProvider enables otelgin spans when set.
	TracerProvider trace.TracerProvider
}

// Server is the HTTP API.
type Server struct {
	engine   *gin.Engine
	source   ExporterSource
	logger   *slog.Logger
	metrics  *metrics.Metrics
	maxBytes int64
}

// New builds the router. source must not be nil.
func New(source ExporterSource, opts Options) *Server {
	s := &Server{
		engine:   gin.New(),
		source:   source,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		maxBytes: opts.MaxBodyBytes,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.maxBytes <= 0 {
		s.maxBytes = DefaultMaxBodyBytes
	}

	s.setupMiddleware(opts)
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupMiddleware(opts Options) {
	s.engine.Use(s.recovery())
	s.engine.Use(requestID())
	if len(opts.CORSOrigins) > 0 {
		s.engine.Use(corsMiddleware(opts.CORSOrigins))
	}
	if opts.TracerProvider != nil {
		s.engine.Use(tracing(opts.TracerProvider))
	}
	s.engine.Use(s.accessLog())
	s.engine.Use(s.instrument())
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/documents", s.exportDocument)
		v1.POST("/documents/:section", s.exportDocument)
		v1.POST("/bibliography", s.exportBibliography)
		v1.POST("/outline", s.outline)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, CodeNotFound, "route not found")
	})
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving on %s: %w", addr, err)
	}
	return nil
}
