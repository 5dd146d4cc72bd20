//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/production-autoschedule/internal/config"
	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/infra/eventqueue"
	"github.com/KasumiMercury/production-autoschedule/internal/observability"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/logging"
)

func initEventPublisher(_ context.Context, cfg *config.Config) (domain.ScheduleEventPublisher, func() error, error) {
	if cfg.EventQueue.URL == "" {
		slog.Warn("EVENT_QUEUE_URL not set, schedule event publishing disabled")

		return nil, nil, nil
	}

	publisher := eventqueue.NewHTTPTasksPublisher(
		cfg.EventQueue.URL,
		cfg.EventQueue.QueueName,
		cfg.EventQueue.MaxRetries,
	)

	slog.Info("event publisher initialized",
		slog.String("type", "http_tasks"),
		slog.String("url", cfg.EventQueue.URL),
		slog.String("queue", cfg.EventQueue.QueueName),
	)

	return publisher, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "autoschedule"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	})
}
