//go:build gcloud

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

func initEventPublisher(ctx context.Context, cfg *config.Config) (domain.ScheduleEventPublisher, func() error, error) {
	publisher, err := eventqueue.NewCloudTasksPublisher(ctx, eventqueue.CloudTasksConfig{
		ProjectID:  cfg.EventQueue.GCloudProjectID,
		LocationID: cfg.EventQueue.GCloudLocationID,
		QueueID:    cfg.EventQueue.GCloudQueueID,
		TargetURL:  cfg.EventQueue.GCloudTargetURL,
		MaxRetries: cfg.EventQueue.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("event publisher initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.EventQueue.GCloudProjectID),
		slog.String("location", cfg.EventQueue.GCloudLocationID),
		slog.String("queue", cfg.EventQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := publisher.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return publisher, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "autoschedule"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	})
}
