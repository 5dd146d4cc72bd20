package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

const scheduleTracerName = "github.com/KasumiMercury/production-autoschedule/internal/service"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartPreviewSpan(ctx context.Context, opts domain.PreviewOptions) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "autoschedule.preview",
		trace.WithAttributes(
			attribute.String("project_id", opts.ProjectID),
			attribute.String("preview.end_date", opts.EndDate),
			attribute.String("preview.cursor_policy", opts.CursorPolicy.String()),
			attribute.Int("preview.task_count", len(opts.TaskIDs)),
			attribute.Bool("preview.include_weekends", opts.IncludeWeekends),
		),
	)
}

func StartApplySpan(ctx context.Context, preview *domain.PreviewResult) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "autoschedule.apply",
		trace.WithAttributes(
			attribute.String("preview_id", preview.ID),
			attribute.String("project_id", preview.ProjectID),
			attribute.Int("apply.task_count", len(preview.Tasks)),
		),
	)
}

func RecordPreviewResult(span trace.Span, result *domain.PreviewResult, err error) {
	if result != nil {
		span.SetAttributes(
			attribute.String("preview_id", result.ID),
			attribute.Int("preview.create_count", result.Summary.CreateCount),
			attribute.Int("preview.update_count", result.Summary.UpdateCount),
			attribute.Int("preview.unchanged_count", result.Summary.UnchangedCount),
			attribute.Int("preview.skipped_count", result.Summary.SkippedTaskCount),
			attribute.Int("preview.conflict_count", result.Summary.ConflictCount),
		)
	}
	setStatus(span, err)
}

func RecordApplyResult(span trace.Span, result *domain.ApplyResult, err error) {
	if result != nil {
		span.SetAttributes(
			attribute.Int("apply.scheduled_count", len(result.ScheduledTaskIDs)),
			attribute.Int("apply.skipped_count", len(result.SkippedTaskIDs)),
			attribute.Int("apply.warning_count", len(result.Warnings)),
		)
	}
	setStatus(span, err)
}

func setStatus(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
