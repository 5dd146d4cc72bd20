package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const placementSavepoint = "phase_placement"

type scheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) domain.ScheduleStore {
	return &scheduleStore{
		db: db,
	}
}

func (s *scheduleStore) FetchTasks(ctx context.Context, tenantID, projectID string, taskIDs []string) ([]domain.Task, error) {
	if len(taskIDs) == 0 {
		return []domain.Task{}, nil
	}

	var rows []taskRow
	err := s.db.WithContext(ctx).
		Model(&taskModel{}).
		Select("tasks.id, tasks.tenant_id, tasks.project_id, tasks.title, tasks.phase_code, tasks.resource_id, " +
			"resources.name AS resource_name, tasks.duration_minutes, tasks.start_date, tasks.due_date").
		Joins("LEFT JOIN resources ON resources.id = tasks.resource_id").
		Where("tasks.id IN ? AND tasks.tenant_id = ? AND tasks.project_id = ?", taskIDs, tenantID, projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task := domain.Task{
			ID:              row.ID,
			TenantID:        row.TenantID,
			ProjectID:       row.ProjectID,
			Title:           row.Title,
			ResourceID:      row.ResourceID,
			ResourceName:    row.ResourceName,
			DurationMinutes: row.DurationMinutes,
			StartDate:       dateKey(row.StartDate),
			DueDate:         dateKey(row.DueDate),
		}
		if row.PhaseCode != nil {
			code := domain.PhaseCode(*row.PhaseCode)
			task.PhaseCode = &code
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *scheduleStore) FetchIntervals(ctx context.Context, tenantID string, taskIDs []string) ([]domain.WorkInterval, error) {
	if len(taskIDs) == 0 {
		return []domain.WorkInterval{}, nil
	}

	var models []workIntervalModel
	err := s.db.WithContext(ctx).
		Select("task_work_slots.*").
		Joins("JOIN tasks ON tasks.id = task_work_slots.task_id").
		Where("task_work_slots.task_id IN ? AND tasks.tenant_id = ? AND tasks.deleted_at IS NULL", taskIDs, tenantID).
		Order("task_work_slots.task_id ASC, task_work_slots.start_time ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.WorkInterval, 0, len(models))
	for _, m := range models {
		intervals = append(intervals, domain.WorkInterval{
			TaskID:    m.TaskID,
			StartTime: m.StartTime,
			EndTime:   m.EndTime,
			IsFixed:   m.IsFixed,
		})
	}
	return intervals, nil
}

func (s *scheduleStore) FetchResourceBookings(ctx context.Context, tenantID string, resourceIDs, excludingTaskIDs []string) ([]domain.Booking, error) {
	if len(resourceIDs) == 0 {
		return []domain.Booking{}, nil
	}

	query := s.db.WithContext(ctx).
		Table("task_work_slots").
		Select("task_work_slots.task_id, tasks.title AS task_title, tasks.resource_id, resources.name AS resource_name, " +
			"task_work_slots.start_time, task_work_slots.end_time").
		Joins("JOIN tasks ON tasks.id = task_work_slots.task_id").
		Joins("LEFT JOIN resources ON resources.id = tasks.resource_id").
		Where("tasks.tenant_id = ? AND tasks.deleted_at IS NULL AND tasks.resource_id IN ?", tenantID, resourceIDs)
	if len(excludingTaskIDs) > 0 {
		query = query.Where("tasks.id NOT IN ?", excludingTaskIDs)
	}

	var rows []bookingRow
	if err := query.Order("task_work_slots.start_time ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, domain.Booking{
			TaskID:       row.TaskID,
			TaskTitle:    row.TaskTitle,
			ResourceID:   row.ResourceID,
			ResourceName: row.ResourceName,
			StartTime:    row.StartTime,
			EndTime:      row.EndTime,
		})
	}
	return bookings, nil
}

func (s *scheduleStore) FetchProjectCalendar(ctx context.Context, tenantID, projectID string) (*domain.ProjectCalendar, error) {
	var project projectModel
	err := s.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", projectID, tenantID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	return &domain.ProjectCalendar{
		ProjectID:       project.ID,
		IncludeWeekends: project.IncludeWeekends,
		WorkdayStart:    clockTime(project.WorkdayStart),
		WorkdayEnd:      clockTime(project.WorkdayEnd),
	}, nil
}

func (s *scheduleStore) WithinTx(ctx context.Context, fn func(tx domain.ScheduleWriter) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&scheduleWriter{tx: tx})
	})
}

type scheduleWriter struct {
	tx *gorm.DB
}

func (w *scheduleWriter) DeleteIntervals(ctx context.Context, tenantID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}

	owned := w.tx.Session(&gorm.Session{NewDB: true}).
		Model(&taskModel{}).
		Select("id").
		Where("tenant_id = ?", tenantID)

	return w.tx.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Where("task_id IN (?)", owned).
		Delete(&workIntervalModel{}).Error
}

func (w *scheduleWriter) InsertIntervals(ctx context.Context, taskID string, slots []domain.ProposedSlot) error {
	if len(slots) == 0 {
		return nil
	}

	models := make([]workIntervalModel, 0, len(slots))
	for _, slot := range slots {
		if !slot.StartTime.Before(slot.EndTime) {
			return fmt.Errorf("%w: task %s [%s, %s)", ErrInvalidSlot, taskID, slot.StartTime, slot.EndTime)
		}
		models = append(models, workIntervalModel{
			TaskID:    taskID,
			StartTime: slot.StartTime.UTC(),
			EndTime:   slot.EndTime.UTC(),
		})
	}

	return w.tx.WithContext(ctx).Create(&models).Error
}

func (w *scheduleWriter) UpdateTaskDates(ctx context.Context, tenantID, taskID string, startDate, dueDate *string) error {
	start, err := parseDateKey(startDate)
	if err != nil {
		return err
	}
	due, err := parseDateKey(dueDate)
	if err != nil {
		return err
	}

	return w.tx.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ? AND tenant_id = ?", taskID, tenantID).
		Updates(map[string]any{
			"start_date": start,
			"due_date":   due,
			"updated_at": time.Now().UTC(),
		}).Error
}

// UpsertPlacement runs inside a savepoint so that a rejected placement
// leaves the surrounding transaction usable.
func (w *scheduleWriter) UpsertPlacement(ctx context.Context, placement domain.PhasePlacement) error {
	tx := w.tx.WithContext(ctx)
	if err := tx.SavePoint(placementSavepoint).Error; err != nil {
		return err
	}

	model := phasePlacementModel{
		TaskID:      placement.TaskID,
		Phase:       placement.Phase,
		PlannedKW:   placement.ISOWeek,
		PlannedYear: placement.ISOYear,
		Status:      "planned",
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_id"}, {Name: "phase"}},
		DoUpdates: clause.AssignmentColumns([]string{"planned_kw", "planned_year", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		if rbErr := tx.RollbackTo(placementSavepoint).Error; rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return nil
}

func dateKey(t *time.Time) *string {
	if t == nil {
		return nil
	}
	key := t.UTC().Format(domain.DateLayout)
	return &key
}

// parseDateKey returns nil for a nil key so the column is cleared.
func parseDateKey(key *string) (any, error) {
	if key == nil {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, *key)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", *key, err)
	}
	return t, nil
}

// clockTime trims a Postgres time value such as "08:00:00" to "08:00".
func clockTime(value string) string {
	if len(value) > 5 && value[2] == ':' && value[5] == ':' {
		return value[:5]
	}
	return value
}
