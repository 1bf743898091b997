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

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/config"
	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/handlers"
	"github.com/dcampus/evaluation-service/internal/repositories/postgres"
	"github.com/dcampus/evaluation-service/internal/seeds"
	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
	"github.com/dcampus/evaluation-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var slogger *slog.Logger
	if cfg.IsDevelopment() {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		slogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
		gin.SetMode(gin.ReleaseMode)
	}
	logger := utils.NewSlogLogger(slogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		slogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := pkg.AutoMigrate(db); err != nil {
		slogger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.SeedDemoData {
		if err := seeds.Seed(db, slogger); err != nil {
			slogger.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	cacheService := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			slogger.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			defer redisClient.Close()
			cacheService = cache.NewRedisCache(redisClient, slogger)
		}
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		slogger.Error("Failed to create event publisher", "error", err)
		// Events are best-effort; keep the service up with a local publisher.
		publisher = events.NewMockEventPublisher()
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slogger.Error("Failed to close event publisher", "error", err)
		}
	}()

	sm := services.NewServiceManager(services.Dependencies{
		Repo:             postgres.NewRepository(db),
		Logger:           slogger,
		Validator:        validator.New(),
		Publisher:        publisher,
		Cache:            cacheService,
		PassingThreshold: cfg.PassingThreshold,
	})

	authMiddleware := handlers.DevAuthMiddleware()
	if cfg.AuthEnabled {
		handlers.InitAuth(cfg.Casdoor)
		authMiddleware = handlers.AuthMiddleware()
	} else {
		slogger.Warn("Auth disabled, trusting X-User-ID header")
	}

	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger), gin.Recovery())

	hm := handlers.NewHandlerManager(sm, logger)
	hm.SetupRoutes(router, authMiddleware)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slogger.Info("Starting evaluation service", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slogger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slogger.Error("Forced shutdown", "error", err)
	}
}
