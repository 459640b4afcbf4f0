// Copyright (c) 2026 Meeple. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/boardhaus/meeple/internal/boardgame/category"
	"github.com/boardhaus/meeple/internal/boardgame/comment"
	"github.com/boardhaus/meeple/internal/boardgame/review"
	"github.com/boardhaus/meeple/internal/boardgame/user"
	"github.com/boardhaus/meeple/internal/platform/config"
	"github.com/boardhaus/meeple/internal/platform/constants"
	"github.com/boardhaus/meeple/internal/platform/middleware"
	"github.com/boardhaus/meeple/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Category serves the read-only category catalogue.
	Category *category.Handler

	// User serves the read-only user directory.
	User *user.Handler

	// Review serves the review catalogue, sorting/filtering, and vote patches.
	Review *review.Handler

	// Comment serves comment threads: list, create, delete.
	Comment *comment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Route-Miss Fallbacks
	// Any request that matches no route, or matches a path with the wrong
	// method, is answered with the canonical Invalid Path body.
	r.NotFound(invalidPath)
	r.MethodNotAllowed(invalidPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under /api.
	r.Route("/api", func(api chi.Router) {
		// Set before the nested groups are mounted so chi copies the
		// fallbacks into each subrouter.
		api.NotFound(invalidPath)
		api.MethodNotAllowed(invalidPath)

		api.Get("/", listEndpoints)

		api.Route("/categories", func(router chi.Router) {
			h.Category.RegisterRoutes(router)
		})
		api.Route("/users", func(router chi.Router) {
			h.User.RegisterRoutes(router)
		})
		api.Route("/reviews", func(router chi.Router) {
			h.Review.RegisterRoutes(router)
			h.Comment.RegisterReviewRoutes(router)
		})
		api.Route("/comments", func(router chi.Router) {
			h.Comment.RegisterRoutes(router)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// invalidPath is the chi fallback for unrouted requests.
func invalidPath(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusNotFound, respond.ErrorEnvelope{Msg: "Invalid Path"})
}

// Router exposes the underlying handler for in-process testing.
func (s *Server) Router() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
