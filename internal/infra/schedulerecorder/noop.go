package schedulerecorder

import (
	"context"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.ScheduleResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordRuns(_ context.Context, _ []domain.ScheduleRunRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
