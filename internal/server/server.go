// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the formatting pipeline over HTTP. Uploads are
// processed synchronously; stored runs can be re-rendered as artifacts
// without re-running the pipeline.
// Implements: prd006-service (R1-R4);
//
//	docs/ARCHITECTURE § HTTP Service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/paper-formatter/internal/pipeline"
	"github.com/pdiddy/paper-formatter/internal/store"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// Server wires the pipeline and paper store into an HTTP API.
type Server struct {
	cfg    types.ServerConfig
	pipe   *pipeline.Pipeline
	papers *store.Store
	logger *slog.Logger
	router *chi.Mux
}

// New builds the HTTP server around a pipeline and a paper store.
func New(cfg types.ServerConfig, pipe *pipeline.Pipeline, papers *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{cfg: cfg, pipe: pipe, papers: papers, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/papers", s.handleFormat)
	r.Get("/papers", s.handleList)
	r.Get("/papers/{id}", s.handleResult)
	r.Get("/papers/{id}/artifact", s.handleArtifact)

	s.router = r
	return s
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
