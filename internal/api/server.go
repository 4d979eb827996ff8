// Copyright (c) 2026 CineVault. All rights reserved.

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

	"github.com/danghoanh/cinevault/internal/access"
	"github.com/danghoanh/cinevault/internal/audit"
	"github.com/danghoanh/cinevault/internal/catalog/actor"
	"github.com/danghoanh/cinevault/internal/catalog/crew"
	"github.com/danghoanh/cinevault/internal/catalog/director"
	"github.com/danghoanh/cinevault/internal/catalog/distributor"
	"github.com/danghoanh/cinevault/internal/catalog/equipment"
	"github.com/danghoanh/cinevault/internal/catalog/film"
	"github.com/danghoanh/cinevault/internal/catalog/location"
	"github.com/danghoanh/cinevault/internal/catalog/producer"
	"github.com/danghoanh/cinevault/internal/catalog/studio"
	"github.com/danghoanh/cinevault/internal/metrics"
	"github.com/danghoanh/cinevault/internal/platform/config"
	"github.com/danghoanh/cinevault/internal/platform/constants"
	"github.com/danghoanh/cinevault/internal/platform/middleware"
	"github.com/danghoanh/cinevault/internal/production/casting"
	"github.com/danghoanh/cinevault/internal/production/crewing"
	"github.com/danghoanh/cinevault/internal/production/shooting"
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

	// Access handles authentication and user administration.
	Access *access.Handler

	// Catalog entity handlers.
	Film        *film.Handler
	Actor       *actor.Handler
	Director    *director.Handler
	Producer    *producer.Handler
	Studio      *studio.Handler
	Distributor *distributor.Handler
	Crew        *crew.Handler
	Equipment   *equipment.Handler
	Location    *location.Handler

	// Production business operations.
	Casting  *casting.Handler
	Crewing  *crewing.Handler
	Shooting *shooting.Handler

	// Metrics exposes the derived-figure reports.
	Metrics *metrics.Handler

	// Audit exposes the read-only audit trails.
	Audit *audit.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Access.RegisterAuthRoutes)
		api.Route("/users", h.Access.RegisterUserRoutes)

		api.Route("/films", h.Film.RegisterRoutes)
		api.Route("/actors", h.Actor.RegisterRoutes)
		api.Route("/directors", h.Director.RegisterRoutes)
		api.Route("/producers", h.Producer.RegisterRoutes)
		api.Route("/studios", h.Studio.RegisterRoutes)
		api.Route("/distributors", h.Distributor.RegisterRoutes)
		api.Route("/crew", h.Crew.RegisterRoutes)
		api.Route("/equipment", h.Equipment.RegisterRoutes)
		api.Route("/locations", h.Location.RegisterRoutes)

		api.Route("/roles", h.Casting.RegisterRoutes)
		api.Route("/crewing", h.Crewing.RegisterRoutes)
		api.Route("/shooting", h.Shooting.RegisterRoutes)

		api.Route("/metrics", h.Metrics.RegisterRoutes)
		api.Route("/audit", h.Audit.RegisterRoutes)
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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
