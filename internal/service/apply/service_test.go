package apply

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const tenantID = "tenant-1"

func ptr[T any](v T) *T {
	return &v
}

func slot(day, fromHour, toHour int) domain.ProposedSlot {
	return domain.ProposedSlot{
		StartTime: time.Date(2026, time.February, day, fromHour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, time.February, day, toHour, 0, 0, 0, time.UTC),
	}
}

func newPreview() *domain.PreviewResult {
	return &domain.PreviewResult{
		ID:        "preview-1",
		ProjectID: "project-1",
		TenantID:  tenantID,
		Tasks: []domain.TaskPlan{
			{
				TaskID:    "t1",
				Title:     "Cut panels",
				PhaseCode: ptr(domain.PhaseCutting),
				Action:    domain.ActionCreate,
				StartDate: ptr("2026-02-13"),
				DueDate:   ptr("2026-02-13"),
				SlotCount: 1,
				Slots:     []domain.ProposedSlot{slot(13, 15, 17)},
			},
			{
				TaskID:    "t2",
				Title:     "Sand",
				Action:    domain.ActionUnchanged,
				StartDate: ptr("2026-02-13"),
				DueDate:   ptr("2026-02-13"),
				SlotCount: 1,
				Slots:     []domain.ProposedSlot{slot(13, 14, 15)},
			},
			{
				TaskID:    "t3",
				Title:     "Mount",
				PhaseCode: ptr(domain.PhaseInstallation),
				Action:    domain.ActionSkipped,
				Reason:    ptr(domain.ReasonFixedSlots),
				Slots:     []domain.ProposedSlot{},
			},
			{
				TaskID:    "t4",
				Title:     "Treat",
				PhaseCode: ptr(domain.PhaseTreatment),
				Action:    domain.ActionUpdate,
				StartDate: ptr("2026-02-12"),
				DueDate:   ptr("2026-02-13"),
				SlotCount: 2,
				Slots:     []domain.ProposedSlot{slot(12, 16, 17), slot(13, 8, 14)},
			},
		},
		Warnings: []string{`Task "Mount" has fixed work slots and was skipped`},
	}
}

func passThroughTx(store *domain.MockScheduleStore, writer *domain.MockScheduleWriter) {
	store.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(domain.ScheduleWriter) error) error {
			return fn(writer)
		})
}

func TestService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)
	writer := domain.NewMockScheduleWriter(ctrl)
	preview := newPreview()

	passThroughTx(store, writer)
	gomock.InOrder(
		writer.EXPECT().DeleteIntervals(gomock.Any(), tenantID, []string{"t1", "t4"}).Return(nil),
		writer.EXPECT().UpdateTaskDates(gomock.Any(), tenantID, "t1", ptr("2026-02-13"), ptr("2026-02-13")).Return(nil),
		writer.EXPECT().InsertIntervals(gomock.Any(), "t1", preview.Tasks[0].Slots).Return(nil),
		writer.EXPECT().UpsertPlacement(gomock.Any(), domain.PhasePlacement{TaskID: "t1", Phase: "zuschnitt", ISOWeek: 7, ISOYear: 2026}).Return(nil),
		writer.EXPECT().UpdateTaskDates(gomock.Any(), tenantID, "t4", ptr("2026-02-12"), ptr("2026-02-13")).Return(nil),
		writer.EXPECT().InsertIntervals(gomock.Any(), "t4", preview.Tasks[3].Slots).Return(nil),
		writer.EXPECT().UpsertPlacement(gomock.Any(), domain.PhasePlacement{TaskID: "t4", Phase: "behandlung", ISOWeek: 7, ISOYear: 2026}).Return(nil),
	)

	result, err := NewService(store, nil).Apply(context.Background(), tenantID, preview)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	if want := []string{"t1", "t2", "t4"}; !reflect.DeepEqual(result.ScheduledTaskIDs, want) {
		t.Errorf("ScheduledTaskIDs = %v, want %v", result.ScheduledTaskIDs, want)
	}
	if want := []string{"t3"}; !reflect.DeepEqual(result.SkippedTaskIDs, want) {
		t.Errorf("SkippedTaskIDs = %v, want %v", result.SkippedTaskIDs, want)
	}

	wantWarnings := []string{
		`Task "Mount" has fixed work slots and was skipped`,
		`Task "Sand" has no phase_code, skipped weekly plan publish`,
	}
	if !reflect.DeepEqual(result.Warnings, wantWarnings) {
		t.Errorf("Warnings = %v, want %v", result.Warnings, wantWarnings)
	}
	if result.PreviewID != "preview-1" {
		t.Errorf("PreviewID = %q, want preview-1", result.PreviewID)
	}
}

func TestService_Apply_PlacementFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)
	writer := domain.NewMockScheduleWriter(ctrl)

	preview := newPreview()
	preview.Tasks = preview.Tasks[:1]

	passThroughTx(store, writer)
	writer.EXPECT().DeleteIntervals(gomock.Any(), tenantID, []string{"t1"}).Return(nil)
	writer.EXPECT().UpdateTaskDates(gomock.Any(), tenantID, "t1", gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().InsertIntervals(gomock.Any(), "t1", gomock.Any()).Return(nil)
	writer.EXPECT().UpsertPlacement(gomock.Any(), gomock.Any()).Return(errors.New("invalid input value for enum"))

	result, err := NewService(store, nil).Apply(context.Background(), tenantID, preview)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	want := `Task "Cut panels": phase schedule publish failed (invalid input value for enum)`
	if result.Warnings[len(result.Warnings)-1] != want {
		t.Errorf("last warning = %q, want %q", result.Warnings[len(result.Warnings)-1], want)
	}
	if !reflect.DeepEqual(result.ScheduledTaskIDs, []string{"t1"}) {
		t.Errorf("ScheduledTaskIDs = %v, want [t1]", result.ScheduledTaskIDs)
	}
}

func TestService_Apply_WriteFailureRollsBack(t *testing.T) {
	writeErr := errors.New("deadlock detected")

	tests := []struct {
		name   string
		expect func(writer *domain.MockScheduleWriter)
	}{
		{
			name: "delete fails",
			expect: func(writer *domain.MockScheduleWriter) {
				writer.EXPECT().DeleteIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(writeErr)
			},
		},
		{
			name: "date update fails",
			expect: func(writer *domain.MockScheduleWriter) {
				writer.EXPECT().DeleteIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				writer.EXPECT().UpdateTaskDates(gomock.Any(), gomock.Any(), "t1", gomock.Any(), gomock.Any()).Return(writeErr)
			},
		},
		{
			name: "insert of a later task fails",
			expect: func(writer *domain.MockScheduleWriter) {
				writer.EXPECT().DeleteIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				writer.EXPECT().UpdateTaskDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				writer.EXPECT().InsertIntervals(gomock.Any(), "t1", gomock.Any()).Return(nil)
				writer.EXPECT().UpsertPlacement(gomock.Any(), gomock.Any()).Return(nil)
				writer.EXPECT().InsertIntervals(gomock.Any(), "t4", gomock.Any()).Return(writeErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := domain.NewMockScheduleStore(ctrl)
			writer := domain.NewMockScheduleWriter(ctrl)
			publisher := domain.NewMockScheduleEventPublisher(ctrl)

			passThroughTx(store, writer)
			tt.expect(writer)
			// No publish expectation: nothing is announced after a rollback.

			result, err := NewService(store, publisher).Apply(context.Background(), tenantID, newPreview())
			if !errors.Is(err, writeErr) {
				t.Errorf("Apply() error = %v, want %v", err, writeErr)
			}
			if result != nil {
				t.Errorf("Apply() result = %+v, want nil", result)
			}
		})
	}
}

func TestService_Apply_TenantMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)

	_, err := NewService(store, nil).Apply(context.Background(), "tenant-2", newPreview())
	if !errors.Is(err, domain.ErrTenantMismatch) {
		t.Errorf("Apply() error = %v, want %v", err, domain.ErrTenantMismatch)
	}
}

func TestService_Apply_NothingToRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)
	writer := domain.NewMockScheduleWriter(ctrl)
	publisher := domain.NewMockScheduleEventPublisher(ctrl)

	preview := newPreview()
	preview.Tasks = preview.Tasks[1:3]

	passThroughTx(store, writer)

	result, err := NewService(store, publisher).Apply(context.Background(), tenantID, preview)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result.ScheduledTaskIDs, []string{"t2"}) {
		t.Errorf("ScheduledTaskIDs = %v, want [t2]", result.ScheduledTaskIDs)
	}
}

func TestService_Apply_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)
	writer := domain.NewMockScheduleWriter(ctrl)
	publisher := domain.NewMockScheduleEventPublisher(ctrl)

	passThroughTx(store, writer)
	writer.EXPECT().DeleteIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().UpdateTaskDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	writer.EXPECT().InsertIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	writer.EXPECT().UpsertPlacement(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var published *domain.ScheduleAppliedEvent
	publisher.EXPECT().
		PublishScheduleApplied(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.ScheduleAppliedEvent) error {
			published = event
			return nil
		})

	if _, err := NewService(store, publisher).Apply(context.Background(), tenantID, newPreview()); err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	if published == nil {
		t.Fatal("event not published")
	}
	if published.PreviewID != "preview-1" || published.TenantID != tenantID {
		t.Errorf("event = %+v", published)
	}
	if len(published.Tasks) != 2 || published.Tasks[0].TaskID != "t1" || published.Tasks[1].TaskID != "t4" {
		t.Errorf("event tasks = %+v, want t1 and t4", published.Tasks)
	}
}

func TestService_Apply_PublishFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domain.NewMockScheduleStore(ctrl)
	writer := domain.NewMockScheduleWriter(ctrl)
	publisher := domain.NewMockScheduleEventPublisher(ctrl)

	passThroughTx(store, writer)
	writer.EXPECT().DeleteIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().UpdateTaskDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	writer.EXPECT().InsertIntervals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	writer.EXPECT().UpsertPlacement(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	publisher.EXPECT().PublishScheduleApplied(gomock.Any(), gomock.Any()).Return(errors.New("queue unavailable"))

	result, err := NewService(store, publisher).Apply(context.Background(), tenantID, newPreview())
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}

	last := result.Warnings[len(result.Warnings)-1]
	if !strings.HasPrefix(last, "schedule event publish failed") {
		t.Errorf("last warning = %q, want publish failure", last)
	}
}
