package apply

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/tracing"
)

type Service struct {
	store     domain.ScheduleStore
	publisher domain.ScheduleEventPublisher
	now       func() time.Time
}

// NewService creates an apply service. publisher may be nil.
func NewService(store domain.ScheduleStore, publisher domain.ScheduleEventPublisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Apply writes a previously built preview as is. Interval and date writes
// share one transaction; placement failures only add warnings.
func (s *Service) Apply(ctx context.Context, tenantID string, preview *domain.PreviewResult) (*domain.ApplyResult, error) {
	ctx, span := tracing.StartApplySpan(ctx, preview)
	defer span.End()

	result, err := s.apply(ctx, tenantID, preview)
	tracing.RecordApplyResult(span, result, err)
	return result, err
}

func (s *Service) apply(ctx context.Context, tenantID string, preview *domain.PreviewResult) (*domain.ApplyResult, error) {
	if preview.TenantID != tenantID {
		return nil, domain.ErrTenantMismatch
	}

	result := &domain.ApplyResult{
		PreviewID:        preview.ID,
		ScheduledTaskIDs: make([]string, 0, len(preview.Tasks)),
		SkippedTaskIDs:   make([]string, 0),
	}

	rewritten := make([]string, 0, len(preview.Tasks))
	for _, plan := range preview.Tasks {
		if plan.Action == domain.ActionSkipped {
			result.SkippedTaskIDs = append(result.SkippedTaskIDs, plan.TaskID)
			continue
		}
		result.ScheduledTaskIDs = append(result.ScheduledTaskIDs, plan.TaskID)
		if plan.Action.Rewrites() {
			rewritten = append(rewritten, plan.TaskID)
		}
	}

	var warnings []string
	err := s.store.WithinTx(ctx, func(tx domain.ScheduleWriter) error {
		warnings = slices.Clone(preview.Warnings)
		if warnings == nil {
			warnings = make([]string, 0)
		}

		if len(rewritten) > 0 {
			if err := tx.DeleteIntervals(ctx, tenantID, rewritten); err != nil {
				return fmt.Errorf("delete intervals: %w", err)
			}
		}

		for _, plan := range preview.Tasks {
			if plan.Action == domain.ActionSkipped {
				continue
			}

			if plan.Action.Rewrites() {
				if err := tx.UpdateTaskDates(ctx, tenantID, plan.TaskID, plan.StartDate, plan.DueDate); err != nil {
					return fmt.Errorf("update dates of task %s: %w", plan.TaskID, err)
				}
				if err := tx.InsertIntervals(ctx, plan.TaskID, plan.Slots); err != nil {
					return fmt.Errorf("insert intervals of task %s: %w", plan.TaskID, err)
				}
			}

			if warning := placePhase(ctx, tx, plan); warning != "" {
				warnings = append(warnings, warning)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("apply preview %s: %w", preview.ID, err)
	}

	if s.publisher != nil && len(rewritten) > 0 {
		event := s.buildEvent(preview)
		if err := s.publisher.PublishScheduleApplied(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish schedule applied event",
				slog.String("preview_id", preview.ID),
				slog.String("error", err.Error()),
			)
			warnings = append(warnings, fmt.Sprintf("schedule event publish failed (%s)", err))
		}
	}

	result.Warnings = warnings

	slog.InfoContext(ctx, "schedule preview applied",
		slog.String("preview_id", preview.ID),
		slog.String("project_id", preview.ProjectID),
		slog.Int("scheduled", len(result.ScheduledTaskIDs)),
		slog.Int("rewritten", len(rewritten)),
		slog.Int("skipped", len(result.SkippedTaskIDs)),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// placePhase records the task's production week on the weekly plan and
// returns a warning when that is not possible.
func placePhase(ctx context.Context, tx domain.ScheduleWriter, plan domain.TaskPlan) string {
	if plan.PhaseCode == nil || *plan.PhaseCode == "" {
		return fmt.Sprintf("Task %q has no phase_code, skipped weekly plan publish", plan.Title)
	}
	if plan.DueDate == nil {
		return ""
	}

	due, err := time.Parse(domain.DateLayout, *plan.DueDate)
	if err != nil {
		return fmt.Sprintf("Task %q: phase schedule publish failed (%s)", plan.Title, err)
	}
	year, week := due.ISOWeek()

	placement := domain.PhasePlacement{
		TaskID:  plan.TaskID,
		Phase:   plan.PhaseCode.StoragePhase(),
		ISOWeek: week,
		ISOYear: year,
	}
	if err := tx.UpsertPlacement(ctx, placement); err != nil {
		slog.WarnContext(ctx, "phase placement failed",
			slog.String("task_id", plan.TaskID),
			slog.String("phase", placement.Phase),
			slog.String("error", err.Error()),
		)
		return fmt.Sprintf("Task %q: phase schedule publish failed (%s)", plan.Title, err)
	}
	return ""
}

func (s *Service) buildEvent(preview *domain.PreviewResult) *domain.ScheduleAppliedEvent {
	event := &domain.ScheduleAppliedEvent{
		PreviewID: preview.ID,
		TenantID:  preview.TenantID,
		ProjectID: preview.ProjectID,
		Tasks:     make([]domain.ScheduledTaskEvent, 0, len(preview.Tasks)),
		AppliedAt: s.now().UTC(),
	}
	for _, plan := range preview.Tasks {
		if !plan.Action.Rewrites() {
			continue
		}
		event.Tasks = append(event.Tasks, domain.ScheduledTaskEvent{
			TaskID:    plan.TaskID,
			PhaseCode: plan.PhaseCode,
			Action:    plan.Action,
			StartDate: plan.StartDate,
			DueDate:   plan.DueDate,
		})
	}
	return event
}
