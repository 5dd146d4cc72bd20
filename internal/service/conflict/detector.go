package conflict

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

type Detector struct {
	reader domain.ScheduleReader
}

func NewDetector(reader domain.ScheduleReader) *Detector {
	return &Detector{
		reader: reader,
	}
}

// Detect reports every proposed slot that overlaps a booking of the same
// resource, both against tasks outside the batch and between batch tasks.
// Conflicts are findings only and never change a plan's action.
func (d *Detector) Detect(ctx context.Context, tenantID string, plans []domain.TaskPlan, taskIDs []string) ([]domain.Conflict, error) {
	resourceIDs := scheduledResources(plans)
	if len(resourceIDs) == 0 {
		return []domain.Conflict{}, nil
	}

	bookings, err := d.reader.FetchResourceBookings(ctx, tenantID, resourceIDs, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch resource bookings: %w", err)
	}

	byResource := make(map[string][]domain.Booking, len(resourceIDs))
	for _, booking := range bookings {
		byResource[booking.ResourceID] = append(byResource[booking.ResourceID], booking)
	}

	conflicts := make([]domain.Conflict, 0)
	for i, plan := range plans {
		if !schedulable(plan) {
			continue
		}
		resourceID := *plan.ResourceID

		for _, slot := range plan.Slots {
			for _, booking := range byResource[resourceID] {
				if !domain.Overlaps(slot.StartTime, slot.EndTime, booking.StartTime, booking.EndTime) {
					continue
				}
				conflicts = append(conflicts, domain.Conflict{
					TaskID:            plan.TaskID,
					TaskTitle:         plan.Title,
					ResourceID:        resourceID,
					ResourceName:      resourceName(plan, booking.ResourceName),
					ProposedStartTime: slot.StartTime,
					ProposedEndTime:   slot.EndTime,
					ConflictTaskID:    booking.TaskID,
					ConflictTaskTitle: booking.TaskTitle,
					ConflictStartTime: booking.StartTime,
					ConflictEndTime:   booking.EndTime,
				})
			}
		}

		conflicts = append(conflicts, batchConflicts(plan, plans[i+1:])...)
	}

	if len(conflicts) > 0 {
		slog.DebugContext(ctx, "resource conflicts detected",
			slog.String("tenant_id", tenantID),
			slog.Int("resource_count", len(resourceIDs)),
			slog.Int("booking_count", len(bookings)),
			slog.Int("conflict_count", len(conflicts)),
		)
	}

	return conflicts, nil
}

// batchConflicts pairs plan with the batch tasks listed after it.
func batchConflicts(plan domain.TaskPlan, later []domain.TaskPlan) []domain.Conflict {
	var conflicts []domain.Conflict
	resourceID := *plan.ResourceID

	for _, other := range later {
		if !schedulable(other) || *other.ResourceID != resourceID || other.TaskID == plan.TaskID {
			continue
		}
		for _, slot := range plan.Slots {
			for _, otherSlot := range other.Slots {
				if !domain.Overlaps(slot.StartTime, slot.EndTime, otherSlot.StartTime, otherSlot.EndTime) {
					continue
				}
				conflicts = append(conflicts, domain.Conflict{
					TaskID:            plan.TaskID,
					TaskTitle:         plan.Title,
					ResourceID:        resourceID,
					ResourceName:      resourceName(plan, other.ResourceName),
					ProposedStartTime: slot.StartTime,
					ProposedEndTime:   slot.EndTime,
					ConflictTaskID:    other.TaskID,
					ConflictTaskTitle: other.Title,
					ConflictStartTime: otherSlot.StartTime,
					ConflictEndTime:   otherSlot.EndTime,
				})
			}
		}
	}
	return conflicts
}

func schedulable(plan domain.TaskPlan) bool {
	return plan.Action != domain.ActionSkipped && plan.ResourceID != nil && *plan.ResourceID != ""
}

func scheduledResources(plans []domain.TaskPlan) []string {
	seen := make(map[string]struct{})
	resourceIDs := make([]string, 0)
	for _, plan := range plans {
		if !schedulable(plan) {
			continue
		}
		if _, ok := seen[*plan.ResourceID]; ok {
			continue
		}
		seen[*plan.ResourceID] = struct{}{}
		resourceIDs = append(resourceIDs, *plan.ResourceID)
	}
	return resourceIDs
}

func resourceName(plan domain.TaskPlan, fallback *string) *string {
	if plan.ResourceName != nil {
		return plan.ResourceName
	}
	return fallback
}
