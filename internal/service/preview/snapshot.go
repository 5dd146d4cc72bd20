package preview

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

// Snapshot is the persisted state of the requested tasks at preview time.
// Tasks that do not exist for the tenant and project are absent.
type Snapshot struct {
	TasksByID         map[string]*domain.Task
	IntervalsByTaskID map[string][]domain.WorkInterval
}

func LoadSnapshot(ctx context.Context, reader domain.ScheduleReader, tenantID, projectID string, taskIDs []string) (*Snapshot, error) {
	var (
		tasks     []domain.Task
		intervals []domain.WorkInterval
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = reader.FetchTasks(gctx, tenantID, projectID, taskIDs)
		if err != nil {
			return fmt.Errorf("fetch tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		intervals, err = reader.FetchIntervals(gctx, tenantID, taskIDs)
		if err != nil {
			return fmt.Errorf("fetch intervals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		TasksByID:         make(map[string]*domain.Task, len(tasks)),
		IntervalsByTaskID: make(map[string][]domain.WorkInterval, len(tasks)),
	}
	for i := range tasks {
		snapshot.TasksByID[tasks[i].ID] = &tasks[i]
	}
	for _, interval := range intervals {
		snapshot.IntervalsByTaskID[interval.TaskID] = append(snapshot.IntervalsByTaskID[interval.TaskID], interval)
	}

	return snapshot, nil
}

func (s *Snapshot) Task(taskID string) (*domain.Task, bool) {
	task, ok := s.TasksByID[taskID]
	return task, ok
}

func (s *Snapshot) Intervals(taskID string) []domain.WorkInterval {
	return s.IntervalsByTaskID[taskID]
}
