package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=schedule_event_publisher.go -destination=schedule_event_publisher_mock.go -package=domain

type ScheduledTaskEvent struct {
	TaskID    string     `json:"task_id"`
	PhaseCode *PhaseCode `json:"phase_code,omitempty"`
	Action    Action     `json:"action"`
	StartDate *string    `json:"start_date"`
	DueDate   *string    `json:"due_date"`
}

// ScheduleAppliedEvent announces a committed auto-schedule to downstream
// consumers such as the weekly plan.
type ScheduleAppliedEvent struct {
	PreviewID string               `json:"preview_id"`
	TenantID  string               `json:"tenant_id"`
	ProjectID string               `json:"project_id"`
	Tasks     []ScheduledTaskEvent `json:"tasks"`
	AppliedAt time.Time            `json:"applied_at"`
}

type ScheduleEventPublisher interface {
	PublishScheduleApplied(ctx context.Context, event *ScheduleAppliedEvent) error
}
