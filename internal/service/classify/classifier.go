package classify

import (
	"fmt"
	"slices"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

// PackFunc packs a duration and returns the proposed slots in order.
type PackFunc func(durationMinutes int) []domain.ProposedSlot

type Result struct {
	Plan domain.TaskPlan
	// Warning is set for skipped tasks.
	Warning string
}

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify decides the action for task. pack is only called when the task
// can be scheduled.
func (c *Classifier) Classify(task *domain.Task, existing []domain.WorkInterval, pack PackFunc) Result {
	if slices.ContainsFunc(existing, func(interval domain.WorkInterval) bool { return interval.IsFixed }) {
		plan := domain.NewSkippedPlan(task.ID, task, domain.ReasonFixedSlots)
		plan.StartDate = task.StartDate
		plan.DueDate = task.DueDate
		return Result{
			Plan:    plan,
			Warning: fmt.Sprintf("Task %q has fixed work slots and was skipped", task.Title),
		}
	}

	if task.DurationMinutes == nil || *task.DurationMinutes <= 0 {
		return Result{
			Plan:    domain.NewSkippedPlan(task.ID, task, domain.ReasonNoDuration),
			Warning: fmt.Sprintf("Task %q has no duration, skipped", task.Title),
		}
	}

	slots := pack(*task.DurationMinutes)
	startDate := domain.DateKey(slots[0].StartTime)
	dueDate := domain.DateKey(slots[len(slots)-1].EndTime)

	action := domain.ActionUpdate
	switch {
	case !task.HasSchedule(existing):
		action = domain.ActionCreate
	case equalDate(task.StartDate, startDate) && equalDate(task.DueDate, dueDate) && slotsMatch(existing, slots):
		action = domain.ActionUnchanged
	}

	return Result{
		Plan: domain.TaskPlan{
			TaskID:          task.ID,
			Title:           task.Title,
			PhaseCode:       task.PhaseCode,
			ResourceID:      task.ResourceID,
			ResourceName:    task.ResourceName,
			Action:          action,
			DurationMinutes: task.DurationMinutes,
			StartDate:       &startDate,
			DueDate:         &dueDate,
			SlotCount:       len(slots),
			Slots:           slots,
		},
	}
}

func equalDate(current *string, proposed string) bool {
	return current != nil && *current == proposed
}

func slotsMatch(existing []domain.WorkInterval, proposed []domain.ProposedSlot) bool {
	if len(existing) != len(proposed) {
		return false
	}
	for i := range existing {
		if !existing[i].StartTime.Equal(proposed[i].StartTime) || !existing[i].EndTime.Equal(proposed[i].EndTime) {
			return false
		}
	}
	return true
}
