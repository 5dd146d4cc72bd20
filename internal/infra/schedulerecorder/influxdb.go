//go:build !gcloud

package schedulerecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const runMeasurement = "schedule_run"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, schedule run recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "schedule run recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

func (r *influxDBRecorder) RecordRuns(ctx context.Context, records []domain.ScheduleRunRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, runPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write schedule runs to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func runPoint(record domain.ScheduleRunRecord) *write.Point {
	return influxdb2.NewPoint(
		runMeasurement,
		map[string]string{
			"tenant_id":     record.TenantID,
			"project_id":    record.ProjectID,
			"phase":         record.Phase,
			"cursor_policy": record.CursorPolicy,
		},
		map[string]any{
			"run_id":          record.RunID,
			"selected_count":  record.SelectedCount,
			"create_count":    record.CreateCount,
			"update_count":    record.UpdateCount,
			"unchanged_count": record.UnchangedCount,
			"skipped_count":   record.SkippedCount,
			"conflict_count":  record.ConflictCount,
			"warning_count":   record.WarningCount,
		},
		record.RecordedAt,
	)
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
