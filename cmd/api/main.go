// Copyright (c) 2026 CineVault. All rights reserved.

// Command api is the entry point for the CineVault HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danghoanh/cinevault/internal/access"
	"github.com/danghoanh/cinevault/internal/api"
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
	"github.com/danghoanh/cinevault/internal/platform/migration"
	pgstore "github.com/danghoanh/cinevault/internal/platform/postgres"
	redisstore "github.com/danghoanh/cinevault/internal/platform/redis"
	"github.com/danghoanh/cinevault/internal/platform/sec"
	"github.com/danghoanh/cinevault/internal/production/casting"
	"github.com/danghoanh/cinevault/internal/production/crewing"
	"github.com/danghoanh/cinevault/internal/production/shooting"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	recorder := audit.NewRecorder()

	accessRepository := access.NewPostgresRepository(pool, recorder)
	sessionStore := access.NewRedisSessionStore(rdb)
	accessService := access.NewService(accessRepository, sessionStore, jwtSvc, log)
	accessHandler := access.NewHandler(accessService)

	filmHandler := film.NewHandler(film.NewService(film.NewPostgresRepository(pool, recorder), log))
	actorHandler := actor.NewHandler(actor.NewService(actor.NewPostgresRepository(pool), log))
	directorHandler := director.NewHandler(director.NewService(director.NewPostgresRepository(pool), log))
	producerHandler := producer.NewHandler(producer.NewService(producer.NewPostgresRepository(pool), log))
	studioHandler := studio.NewHandler(studio.NewService(studio.NewPostgresRepository(pool), log))
	distributorHandler := distributor.NewHandler(distributor.NewService(distributor.NewPostgresRepository(pool), log))
	crewHandler := crew.NewHandler(crew.NewService(crew.NewPostgresRepository(pool), log))
	equipmentHandler := equipment.NewHandler(equipment.NewService(equipment.NewPostgresRepository(pool, recorder), log))
	locationHandler := location.NewHandler(location.NewService(location.NewPostgresRepository(pool), log))

	castingHandler := casting.NewHandler(casting.NewService(casting.NewPostgresRepository(pool, recorder), log))
	crewingHandler := crewing.NewHandler(crewing.NewService(crewing.NewPostgresRepository(pool), log))
	shootingHandler := shooting.NewHandler(shooting.NewService(shooting.NewPostgresRepository(pool), log))

	metricsHandler := metrics.NewHandler(metrics.NewCalculator(metrics.NewPostgresReader(pool)))
	auditHandler := audit.NewHandler(audit.NewService(audit.NewPostgresRepository(pool), log))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,

		Access: accessHandler,

		Film:        filmHandler,
		Actor:       actorHandler,
		Director:    directorHandler,
		Producer:    producerHandler,
		Studio:      studioHandler,
		Distributor: distributorHandler,
		Crew:        crewHandler,
		Equipment:   equipmentHandler,
		Location:    locationHandler,

		Casting:  castingHandler,
		Crewing:  crewingHandler,
		Shooting: shootingHandler,

		Metrics: metricsHandler,
		Audit:   auditHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
