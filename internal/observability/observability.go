package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/KasumiMercury/production-autoschedule/internal/observability/logging"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
}

// Resources owns the process-wide logger and telemetry providers.
type Resources struct {
	logger    *slog.Logger
	level     *slog.LevelVar
	shutdowns []func(context.Context) error
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

// SetLogLevel changes the level of the logger returned by Logger.
func (r *Resources) SetLogLevel(level slog.Level) {
	r.level.Set(level)
}

// Shutdown flushes and stops the providers in reverse order of creation.
func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(r.shutdowns) - 1; i >= 0; i-- {
		if err := r.shutdowns[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	level := new(slog.LevelVar)
	obs := &Resources{
		level: level,
		logger: logging.NewLogger(os.Stdout, logging.Config{
			Service:       cfg.ServiceInfo,
			Environment:   cfg.Environment,
			DefaultModule: cfg.DefaultModule,
			GCPProjectID:  cfg.GCPProjectID,
			Level:         level,
		}),
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceInfo.Name),
		attribute.String("service.version", cfg.ServiceInfo.Version),
		attribute.String("deployment.environment", string(cfg.Environment)),
	))
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	spanExporter, metricExporter, err := newExporters(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tracerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	}
	if spanExporter != nil {
		tracerOpts = append(tracerOpts, sdktrace.WithBatcher(spanExporter))
	}
	tracerProvider := sdktrace.NewTracerProvider(tracerOpts...)
	obs.shutdowns = append(obs.shutdowns, tracerProvider.Shutdown)

	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	if metricExporter != nil {
		meterOpts = append(meterOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	}
	meterProvider := sdkmetric.NewMeterProvider(meterOpts...)
	obs.shutdowns = append(obs.shutdowns, meterProvider.Shutdown)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return obs, nil
}
