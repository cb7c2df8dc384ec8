// Package server exposes the image engine over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/user/placeholder/pkg/orchestrator"
	"github.com/user/placeholder/pkg/pipeline"
	"github.com/user/placeholder/pkg/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultCount is the bulk count used when the request names none.
const DefaultCount = 10

// Engine renders images for the handlers.
type Engine interface {
	Image(ctx context.Context, req orchestrator.ImageRequest) (pipeline.EncodedImage, error)
	Bulk(ctx context.Context, req orchestrator.BulkRequest) (orchestrator.BulkOutput, error)
}

// Config contains the HTTP server settings.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Limits shown on the index page
	MaxDimension int
	MaxCount     int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	limits := orchestrator.DefaultConfig()
	return Config{
		Addr:            ":8000",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxDimension:    limits.MaxDimension,
		MaxCount:        limits.MaxCount,
	}
}

// Server serves placeholder images.
type Server struct {
	engine    Engine
	config    Config
	logger    ports.Logger
	templates *template.Template
}

// New creates a new Server.
func New(engine Engine, config Config, logger ports.Logger) *Server {
	return &Server{
		engine:    engine,
		config:    config,
		logger:    logger.WithComponent("server"),
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /{width}/{height}", s.handleImage)
	mux.HandleFunc("GET /bulk/{width}/{height}", s.handleBulk)

	return WithMiddleware(mux, RequestID, RequestLogger(s.logger), Recoverer(s.logger))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
