package domain

import (
	"context"
	"time"
)

type ScheduleRunRecord struct {
	RunID          string
	TenantID       string
	ProjectID      string
	Phase          string
	CursorPolicy   string
	SelectedCount  int
	CreateCount    int
	UpdateCount    int
	UnchangedCount int
	SkippedCount   int
	ConflictCount  int
	WarningCount   int
	RecordedAt     time.Time
}

type ScheduleResultRecorder interface {
	RecordRuns(ctx context.Context, records []ScheduleRunRecord) error
	Flush(ctx context.Context) error
	Close() error
}
