//go:build gcloud

package schedulerecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	RunID          string    `bigquery:"run_id"`
	TenantID       string    `bigquery:"tenant_id"`
	ProjectID      string    `bigquery:"project_id"`
	Phase          string    `bigquery:"phase"`
	CursorPolicy   string    `bigquery:"cursor_policy"`
	SelectedCount  int64     `bigquery:"selected_count"`
	CreateCount    int64     `bigquery:"create_count"`
	UpdateCount    int64     `bigquery:"update_count"`
	UnchangedCount int64     `bigquery:"unchanged_count"`
	SkippedCount   int64     `bigquery:"skipped_count"`
	ConflictCount  int64     `bigquery:"conflict_count"`
	WarningCount   int64     `bigquery:"warning_count"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, schedule run recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, schedule run recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "schedule run recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordRuns(ctx context.Context, records []domain.ScheduleRunRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:     record.RecordedAt,
			RunID:          record.RunID,
			TenantID:       record.TenantID,
			ProjectID:      record.ProjectID,
			Phase:          record.Phase,
			CursorPolicy:   record.CursorPolicy,
			SelectedCount:  int64(record.SelectedCount),
			CreateCount:    int64(record.CreateCount),
			UpdateCount:    int64(record.UpdateCount),
			UnchangedCount: int64(record.UnchangedCount),
			SkippedCount:   int64(record.SkippedCount),
			ConflictCount:  int64(record.ConflictCount),
			WarningCount:   int64(record.WarningCount),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert schedule runs to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
