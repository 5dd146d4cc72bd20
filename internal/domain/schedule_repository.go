package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleReader is the read side of the task, interval and booking tables.
// All reads are scoped to one tenant and exclude soft-deleted tasks.
type ScheduleReader interface {
	FetchTasks(ctx context.Context, tenantID, projectID string, taskIDs []string) ([]Task, error)
	// FetchIntervals returns intervals ordered by task then start time.
	FetchIntervals(ctx context.Context, tenantID string, taskIDs []string) ([]WorkInterval, error)
	FetchResourceBookings(ctx context.Context, tenantID string, resourceIDs, excludingTaskIDs []string) ([]Booking, error)
	FetchProjectCalendar(ctx context.Context, tenantID, projectID string) (*ProjectCalendar, error)
}

type ScheduleWriter interface {
	DeleteIntervals(ctx context.Context, tenantID string, taskIDs []string) error
	InsertIntervals(ctx context.Context, taskID string, slots []ProposedSlot) error
	UpdateTaskDates(ctx context.Context, tenantID, taskID string, startDate, dueDate *string) error
	// UpsertPlacement is idempotent on (task, phase). A failure must leave
	// the surrounding transaction usable.
	UpsertPlacement(ctx context.Context, placement PhasePlacement) error
}

type ScheduleStore interface {
	ScheduleReader
	// WithinTx runs fn in one transaction; a returned error rolls it back.
	WithinTx(ctx context.Context, fn func(tx ScheduleWriter) error) error
}

type PreviewRepository interface {
	SavePreview(ctx context.Context, preview *PreviewResult, ttl time.Duration) error
	GetPreview(ctx context.Context, previewID string) (*PreviewResult, error)
	DeletePreview(ctx context.Context, previewID string) error
}
