package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/cache"
	"github.com/hrithikcode/TO-DO-LIST/internal/config"
	"github.com/hrithikcode/TO-DO-LIST/internal/database"
	"github.com/hrithikcode/TO-DO-LIST/internal/handlers"
	"github.com/hrithikcode/TO-DO-LIST/internal/identity"
	"github.com/hrithikcode/TO-DO-LIST/internal/jobs"
	"github.com/hrithikcode/TO-DO-LIST/internal/log"
	"github.com/hrithikcode/TO-DO-LIST/internal/notify"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/revocation"
	"github.com/hrithikcode/TO-DO-LIST/internal/security"
	"github.com/hrithikcode/TO-DO-LIST/internal/server"
	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}

	if err := database.Migrate(cfg.Postgres); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// With no redis address the revocation registry falls back to an
	// in-process set, swept hourly. Revocations are lost on restart.
	var (
		redisClient    *redis.Client
		registry       revocation.Registry
		memoryRegistry *revocation.MemoryRegistry
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		registry = revocation.NewRedisRegistry(redisClient)
	} else {
		memoryRegistry = revocation.NewMemoryRegistry()
		registry = memoryRegistry
		logger.Warn().Msg("no redis configured, using in-memory revocation registry")
	}

	userRepo := repository.NewUserRepository(dbPool)
	todoRepo := repository.NewTodoRepository(dbPool)

	tokens := security.NewTokenService(cfg.Security.JWTSecret, cfg.Security.SessionTTL, cfg.Security.ResetTTL)
	verifier := identity.NewGoogleVerifier(cfg.Google.ClientID, logger)
	mailer := notify.NewMailer(cfg.Mail, logger)

	authService := service.NewAuthService(userRepo, tokens, registry, verifier, logger)
	resetService := service.NewResetService(userRepo, tokens, mailer, logger)
	todoService := service.NewTodoService(todoRepo, mailer, logger)

	handlerSet := handlers.NewHandlerSet(logger, cfg, authService, resetService, todoService, dbPool, redisClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(memoryRegistry, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	scheduler.Stop()

	db.Close()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
