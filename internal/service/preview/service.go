package preview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/tracing"
	"github.com/KasumiMercury/production-autoschedule/internal/service/classify"
	"github.com/KasumiMercury/production-autoschedule/internal/service/conflict"
	"github.com/KasumiMercury/production-autoschedule/internal/service/workday"
)

type Service struct {
	reader     domain.ScheduleReader
	classifier *classify.Classifier
	detector   *conflict.Detector
	now        func() time.Time
}

func NewService(reader domain.ScheduleReader) *Service {
	return &Service{
		reader:     reader,
		classifier: classify.NewClassifier(),
		detector:   conflict.NewDetector(reader),
		now:        time.Now,
	}
}

// Build computes a schedule preview without writing anything.
func (s *Service) Build(ctx context.Context, opts domain.PreviewOptions) (*domain.PreviewResult, error) {
	ctx, span := tracing.StartPreviewSpan(ctx, opts)
	defer span.End()

	result, err := s.build(ctx, opts)
	tracing.RecordPreviewResult(span, result, err)
	return result, err
}

func (s *Service) build(ctx context.Context, opts domain.PreviewOptions) (*domain.PreviewResult, error) {
	if len(opts.TaskIDs) == 0 {
		return nil, domain.ErrNoTasksRequested
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	endDate, err := time.ParseInLocation(domain.DateLayout, opts.EndDate, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEndDate, opts.EndDate)
	}

	policy := opts.CursorPolicy
	if policy == "" {
		policy = domain.CursorChained
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCursorPolicy, policy)
	}

	snapshot, err := LoadSnapshot(ctx, s.reader, opts.TenantID, opts.ProjectID, opts.TaskIDs)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	result := &domain.PreviewResult{
		ID:              uuid.NewString(),
		ProjectID:       opts.ProjectID,
		TenantID:        opts.TenantID,
		EndDate:         opts.EndDate,
		TaskIDs:         opts.TaskIDs,
		IncludeWeekends: opts.IncludeWeekends,
		WorkdayStart:    opts.WorkdayStart,
		WorkdayEnd:      opts.WorkdayEnd,
		CursorPolicy:    policy,
		Timezone:        loc.String(),
		Conflicts:       []domain.Conflict{},
		CreatedAt:       s.now().UTC(),
	}

	packer, err := newPacker(opts)
	if err != nil {
		slog.WarnContext(ctx, "invalid workday configuration, skipping all tasks",
			slog.String("project_id", opts.ProjectID),
			slog.String("workday_start", opts.WorkdayStart),
			slog.String("workday_end", opts.WorkdayEnd),
			slog.String("error", err.Error()),
		)

		result.Tasks = make([]domain.TaskPlan, 0, len(opts.TaskIDs))
		for _, taskID := range opts.TaskIDs {
			task, _ := snapshot.Task(taskID)
			result.Tasks = append(result.Tasks, domain.NewSkippedPlan(taskID, task, domain.ReasonInvalidWorkday))
		}
		result.Warnings = []string{domain.ReasonInvalidWorkday}
		result.Summary = domain.NewSummary(opts.TaskIDs, result.Tasks, result.Conflicts)
		return result, nil
	}

	anchor := packer.Anchor(endDate)
	plans, warnings := s.plan(snapshot, opts.TaskIDs, packer, anchor, policy)

	conflicts, err := s.detector.Detect(ctx, opts.TenantID, plans, opts.TaskIDs)
	if err != nil {
		return nil, fmt.Errorf("detect conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		warnings = append(warnings, fmt.Sprintf("Detected %d resource conflict(s) in the preview", len(conflicts)))
	}

	result.Tasks = plans
	result.Conflicts = conflicts
	result.Warnings = warnings
	result.Summary = domain.NewSummary(opts.TaskIDs, plans, conflicts)

	slog.InfoContext(ctx, "schedule preview built",
		slog.String("preview_id", result.ID),
		slog.String("project_id", opts.ProjectID),
		slog.String("cursor_policy", policy.String()),
		slog.Int("selected", result.Summary.SelectedTaskCount),
		slog.Int("create", result.Summary.CreateCount),
		slog.Int("update", result.Summary.UpdateCount),
		slog.Int("unchanged", result.Summary.UnchangedCount),
		slog.Int("skipped", result.Summary.SkippedTaskCount),
		slog.Int("conflicts", result.Summary.ConflictCount),
	)

	return result, nil
}

// plan folds the task list from the last task to the first. Under the
// chained policy the cursor left by each packed task is where the task
// before it ends; skipped tasks leave the cursor in place. Under the
// independent policy every task starts from the anchor.
func (s *Service) plan(
	snapshot *Snapshot,
	taskIDs []string,
	packer *workday.Packer,
	anchor time.Time,
	policy domain.CursorPolicy,
) ([]domain.TaskPlan, []string) {
	plans := make([]domain.TaskPlan, len(taskIDs))
	notes := make([]string, len(taskIDs))

	cursor := anchor
	for i := len(taskIDs) - 1; i >= 0; i-- {
		taskID := taskIDs[i]

		task, ok := snapshot.Task(taskID)
		if !ok {
			plans[i] = domain.NewSkippedPlan(taskID, nil, domain.ReasonTaskNotFound)
			notes[i] = fmt.Sprintf("Task %s not found", taskID)
			continue
		}

		start := cursor
		if policy == domain.CursorIndependent {
			start = anchor
		}
		next := start

		result := s.classifier.Classify(task, snapshot.Intervals(taskID), func(minutes int) []domain.ProposedSlot {
			var slots []domain.ProposedSlot
			slots, next = packer.Pack(start, minutes)
			return slots
		})

		plans[i] = result.Plan
		notes[i] = result.Warning
		cursor = next
	}

	warnings := make([]string, 0)
	for _, note := range notes {
		if note != "" {
			warnings = append(warnings, note)
		}
	}
	return plans, warnings
}

func newPacker(opts domain.PreviewOptions) (*workday.Packer, error) {
	window, err := workday.ParseWindow(opts.WorkdayStart, opts.WorkdayEnd)
	if err != nil {
		return nil, err
	}
	return workday.NewPacker(window, workday.NewCalendar(opts.IncludeWeekends))
}
