// Package api exposes the zone layout engine over HTTP so editor backends
// can embed pagezone without linking it. The surface mirrors the library:
// zone listing and mutation, layout validation, snapshot capture/restore,
// named snapshot stores, and an SVG rendering of the current page.
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mlietz/pagezone/pkg/interact"
	"github.com/mlietz/pagezone/pkg/snapshot"
)

// Server serves the pagezone HTTP API for one page.
type Server struct {
	ctl    *interact.Controller
	store  snapshot.Store // nil disables the named-snapshot routes
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSnapshotStore enables the named-snapshot routes against a store.
func WithSnapshotStore(store snapshot.Store) Option {
	return func(s *Server) { s.store = store }
}

// NewServer builds the API server over an initialized controller.
func NewServer(ctl *interact.Controller, opts ...Option) *Server {
	s := &Server{
		ctl:    ctl,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Router returns the server's HTTP handler, for embedding and tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/zones", func(r chi.Router) {
		r.Get("/", s.handleListZones)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/height", s.handleSetHeight)
			r.Post("/adjust", s.handleAdjust)
			r.Post("/reset", s.handleReset)
		})
	})

	r.Get("/layout/validate", s.handleValidate)
	r.Get("/editmode", s.handleGetEditMode)
	r.Put("/editmode", s.handleSetEditMode)

	r.Get("/snapshot", s.handleGetSnapshot)
	r.Post("/snapshot", s.handleApplySnapshot)

	if s.store != nil {
		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.handleListStored)
			r.Put("/{name}", s.handleSaveStored)
			r.Get("/{name}", s.handleGetStored)
			r.Post("/{name}/restore", s.handleRestoreStored)
			r.Delete("/{name}", s.handleDeleteStored)
		})
	}

	r.Get("/render.svg", s.handleRenderSVG)
	return r
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
