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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/production-autoschedule/internal/config"
	"github.com/KasumiMercury/production-autoschedule/internal/handler"
	"github.com/KasumiMercury/production-autoschedule/internal/health"
	"github.com/KasumiMercury/production-autoschedule/internal/infra/repository"
	"github.com/KasumiMercury/production-autoschedule/internal/infra/schedulerecorder"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/logging"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/metrics"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/middleware"
	"github.com/KasumiMercury/production-autoschedule/internal/service/apply"
	"github.com/KasumiMercury/production-autoschedule/internal/service/preview"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = logging.Module("production-autoschedule")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	obs.SetLogLevel(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.EventQueue.Validate(); err != nil {
		slog.Error("event queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := schedulerecorder.NewRecorder(ctx, schedulerecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize schedule run recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close schedule run recorder", slog.String("error", err.Error()))
		}
	}()

	publisher, cleanup, err := initEventPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize event publisher", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("event publisher cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	db, err := repository.OpenPostgres(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := repository.ClosePostgres(db); err != nil {
			slog.Warn("failed to close postgres", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate schema", slog.String("error", err.Error()))
			return 1
		}
		slog.Info("schema migrated")
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to access postgres pool", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("postgres connected",
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	store := repository.NewScheduleStore(db)
	previewRepo := repository.NewPreviewRepository(redisClient)

	scheduleHandler := handler.NewScheduleHandler(
		preview.NewService(store),
		apply.NewService(store, publisher),
		store,
		previewRepo,
		cfg.Schedule,
		scheduleMetrics,
		resultRecorder,
	)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:     serviceModule,
		TracerName: "github.com/KasumiMercury/production-autoschedule/internal/observability/middleware",
		JobNameResolver: func(c *gin.Context) string {
			return c.FullPath()
		},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, sqlDB, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	scheduleHandler.RegisterRoutes(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Schedule.Location.String()),
			slog.String("cursor_policy", cfg.Schedule.CursorPolicy.String()),
			slog.String("workday_start", cfg.Schedule.WorkdayStart),
			slog.String("workday_end", cfg.Schedule.WorkdayEnd),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
