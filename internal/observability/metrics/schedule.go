package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const scheduleMeterName = "autoschedule.service"

type ScheduleMetrics struct {
	runsTotal       metric.Int64Counter
	tasksClassified metric.Int64Counter
	conflictsTotal  metric.Int64Counter
	previewDuration metric.Float64Histogram
	applyDuration   metric.Float64Histogram
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	runsTotal, err := meter.Int64Counter(
		"autoschedule_runs_total",
		metric.WithDescription("Total number of preview and apply runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	tasksClassified, err := meter.Int64Counter(
		"autoschedule_tasks_classified_total",
		metric.WithDescription("Tasks classified by a preview, per action"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	conflictsTotal, err := meter.Int64Counter(
		"autoschedule_conflicts_total",
		metric.WithDescription("Resource conflicts reported by previews"),
		metric.WithUnit("{conflict}"),
	)
	if err != nil {
		return nil, err
	}

	previewDuration, err := meter.Float64Histogram(
		"autoschedule_preview_duration_seconds",
		metric.WithDescription("Preview build duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	applyDuration, err := meter.Float64Histogram(
		"autoschedule_apply_duration_seconds",
		metric.WithDescription("Apply transaction duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		runsTotal:       runsTotal,
		tasksClassified: tasksClassified,
		conflictsTotal:  conflictsTotal,
		previewDuration: previewDuration,
		applyDuration:   applyDuration,
	}, nil
}

func (m *ScheduleMetrics) RecordPreview(ctx context.Context, summary domain.Summary, duration time.Duration, err error) {
	m.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", "preview"),
		attribute.String("outcome", outcome(err)),
	))
	m.previewDuration.Record(ctx, duration.Seconds())
	if err != nil {
		return
	}

	for action, count := range map[domain.Action]int{
		domain.ActionCreate:    summary.CreateCount,
		domain.ActionUpdate:    summary.UpdateCount,
		domain.ActionUnchanged: summary.UnchangedCount,
		domain.ActionSkipped:   summary.SkippedTaskCount,
	} {
		if count > 0 {
			m.tasksClassified.Add(ctx, int64(count), metric.WithAttributes(
				attribute.String("action", action.String()),
			))
		}
	}
	if summary.ConflictCount > 0 {
		m.conflictsTotal.Add(ctx, int64(summary.ConflictCount))
	}
}

func (m *ScheduleMetrics) RecordApply(ctx context.Context, duration time.Duration, err error) {
	m.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", "apply"),
		attribute.String("outcome", outcome(err)),
	))
	m.applyDuration.Record(ctx, duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
