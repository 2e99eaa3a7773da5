// Package server implements the web dashboard: the analysis reports rendered
// as HTML pages plus a small JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/zocatelli/equity"
)

// MacroSource provides the macro snapshot; the bcb client implements it.
type MacroSource interface {
	Indicators(ctx context.Context) equity.Macro
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      Config
	logger   *zap.Logger
	server   *http.Server
	mux      *http.ServeMux
	provider equity.Provider
	macro    MacroSource
}

// New constructs a server with all routes and middleware wired.
func New(cfg Config, logger *zap.Logger, provider equity.Provider, macro MacroSource) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		macro:    macro,
		mux:      http.NewServeMux(),
	}
	s.routes()
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.logging(s.mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the routed handler, for tests.
func (s *Server) Handler() http.Handler { return s.logging(s.mux) }

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /stock", s.handleStockForm)
	s.mux.HandleFunc("GET /stock/{ticker}", s.handleStock)
	s.mux.HandleFunc("GET /compare", s.handleCompare)
	s.mux.HandleFunc("GET /screener", s.handleScreener)
	s.mux.HandleFunc("GET /macro", s.handleMacro)

	s.mux.HandleFunc("GET /api/stock/{ticker}", s.handleAPIStock)
	s.mux.HandleFunc("GET /api/screener", s.handleAPIScreener)
	s.mux.HandleFunc("GET /api/macro", s.handleAPIMacro)

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
}

// Run starts the server and blocks until the context is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// logging wraps a handler with zap request logging.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
