package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/production-autoschedule/internal/config"
	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/observability/metrics"
	"github.com/KasumiMercury/production-autoschedule/internal/service/apply"
	"github.com/KasumiMercury/production-autoschedule/internal/service/preview"
)

type ScheduleHandler struct {
	previewService  *preview.Service
	applyService    *apply.Service
	calendars       domain.ScheduleReader
	previews        domain.PreviewRepository
	config          *config.ScheduleConfig
	scheduleMetrics *metrics.ScheduleMetrics
	resultRecorder  domain.ScheduleResultRecorder
}

func NewScheduleHandler(
	previewService *preview.Service,
	applyService *apply.Service,
	calendars domain.ScheduleReader,
	previews domain.PreviewRepository,
	cfg *config.ScheduleConfig,
	scheduleMetrics *metrics.ScheduleMetrics,
	resultRecorder domain.ScheduleResultRecorder,
) *ScheduleHandler {
	return &ScheduleHandler{
		previewService:  previewService,
		applyService:    applyService,
		calendars:       calendars,
		previews:        previews,
		config:          cfg,
		scheduleMetrics: scheduleMetrics,
		resultRecorder:  resultRecorder,
	}
}

func (h *ScheduleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects/:projectId/auto-schedule")
	projects.POST("", h.HandleAutoSchedule)
	projects.POST("/preview", h.HandlePreview)
	projects.POST("/apply", h.HandleApply)
}

// HandlePreview computes a preview and caches it for a later apply.
func (h *ScheduleHandler) HandlePreview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.OperationTimeout)
	defer cancel()

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	result, ok := h.buildPreview(ctx, c, tenantID)
	if !ok {
		return
	}

	if err := h.previews.SavePreview(ctx, result, h.config.PreviewTTL); err != nil {
		slog.ErrorContext(ctx, "failed to store preview",
			slog.String("preview_id", result.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to store preview")
		return
	}

	h.recordRuns(ctx, h.runRecord("preview", result, len(result.Warnings)))
	respondSuccess(c, http.StatusOK, result)
}

// HandleApply commits a cached preview without recomputing it.
func (h *ScheduleHandler) HandleApply(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.OperationTimeout)
	defer cancel()

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "apply request validation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	cached, err := h.previews.GetPreview(ctx, req.PreviewID)
	if err != nil {
		if errors.Is(err, domain.ErrPreviewNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "preview not found or expired")
			return
		}
		slog.ErrorContext(ctx, "failed to load preview",
			slog.String("preview_id", req.PreviewID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load preview")
		return
	}

	if cached.TenantID != tenantID {
		respondError(c, http.StatusNotFound, "not_found", "preview not found or expired")
		return
	}
	if cached.ProjectID != c.Param("projectId") {
		respondError(c, http.StatusBadRequest, "validation_error", domain.ErrPreviewMismatch.Error())
		return
	}

	result, ok := h.applyPreview(ctx, c, tenantID, cached)
	if !ok {
		return
	}

	if err := h.previews.DeletePreview(ctx, cached.ID); err != nil {
		slog.WarnContext(ctx, "failed to delete applied preview",
			slog.String("preview_id", cached.ID),
			slog.String("error", err.Error()),
		)
	}

	respondSuccess(c, http.StatusOK, result)
}

// HandleAutoSchedule previews and applies in one call.
func (h *ScheduleHandler) HandleAutoSchedule(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.OperationTimeout)
	defer cancel()

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	previewResult, ok := h.buildPreview(ctx, c, tenantID)
	if !ok {
		return
	}
	h.recordRuns(ctx, h.runRecord("preview", previewResult, len(previewResult.Warnings)))

	applyResult, ok := h.applyPreview(ctx, c, tenantID, previewResult)
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, autoScheduleResponse{
		Preview: previewResult,
		Apply:   applyResult,
	})
}

func (h *ScheduleHandler) buildPreview(ctx context.Context, c *gin.Context, tenantID string) (*domain.PreviewResult, bool) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "preview request validation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return nil, false
	}
	if err := req.validate(h.config.MaxTasks); err != nil {
		slog.WarnContext(ctx, "preview request validation failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return nil, false
	}

	projectID := c.Param("projectId")
	opts, err := h.previewOptions(ctx, tenantID, projectID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "project not found")
			return nil, false
		}
		slog.ErrorContext(ctx, "failed to load project calendar",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to load project calendar")
		return nil, false
	}

	start := time.Now()
	result, err := h.previewService.Build(ctx, opts)
	if h.scheduleMetrics != nil {
		var summary domain.Summary
		if result != nil {
			summary = result.Summary
		}
		h.scheduleMetrics.RecordPreview(ctx, summary, time.Since(start), err)
	}
	if err != nil {
		status, code := serviceErrorStatus(err)
		slog.ErrorContext(ctx, "preview failed",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()),
		)
		respondError(c, status, code, err.Error())
		return nil, false
	}

	return result, true
}

func (h *ScheduleHandler) applyPreview(ctx context.Context, c *gin.Context, tenantID string, previewResult *domain.PreviewResult) (*domain.ApplyResult, bool) {
	start := time.Now()
	result, err := h.applyService.Apply(ctx, tenantID, previewResult)
	if h.scheduleMetrics != nil {
		h.scheduleMetrics.RecordApply(ctx, time.Since(start), err)
	}
	if err != nil {
		if errors.Is(err, domain.ErrTenantMismatch) {
			respondError(c, http.StatusNotFound, "not_found", "preview not found or expired")
			return nil, false
		}
		status, code := serviceErrorStatus(err)
		slog.ErrorContext(ctx, "apply failed",
			slog.String("preview_id", previewResult.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, status, code, "failed to apply schedule")
		return nil, false
	}

	h.recordRuns(ctx, h.runRecord("apply", previewResult, len(result.Warnings)))
	return result, true
}

// previewOptions fills calendar fields from the request, then the project,
// then the service defaults.
func (h *ScheduleHandler) previewOptions(ctx context.Context, tenantID, projectID string, req *previewRequest) (domain.PreviewOptions, error) {
	calendar, err := h.calendars.FetchProjectCalendar(ctx, tenantID, projectID)
	if err != nil {
		return domain.PreviewOptions{}, err
	}

	opts := domain.PreviewOptions{
		ProjectID:       projectID,
		TenantID:        tenantID,
		TaskIDs:         req.TaskIDs,
		EndDate:         req.EndDate,
		IncludeWeekends: calendar.IncludeWeekends,
		WorkdayStart:    firstNonEmpty(calendar.WorkdayStart, h.config.WorkdayStart),
		WorkdayEnd:      firstNonEmpty(calendar.WorkdayEnd, h.config.WorkdayEnd),
		CursorPolicy:    h.config.CursorPolicy,
		Location:        h.config.Location,
	}
	if req.IncludeWeekends != nil {
		opts.IncludeWeekends = *req.IncludeWeekends
	}
	if req.WorkdayStart != nil {
		opts.WorkdayStart = *req.WorkdayStart
	}
	if req.WorkdayEnd != nil {
		opts.WorkdayEnd = *req.WorkdayEnd
	}
	if req.CursorPolicy != nil {
		opts.CursorPolicy = domain.CursorPolicy(*req.CursorPolicy)
	}
	return opts, nil
}

func (h *ScheduleHandler) runRecord(phase string, result *domain.PreviewResult, warningCount int) domain.ScheduleRunRecord {
	return domain.ScheduleRunRecord{
		RunID:          result.ID,
		TenantID:       result.TenantID,
		ProjectID:      result.ProjectID,
		Phase:          phase,
		CursorPolicy:   result.CursorPolicy.String(),
		SelectedCount:  result.Summary.SelectedTaskCount,
		CreateCount:    result.Summary.CreateCount,
		UpdateCount:    result.Summary.UpdateCount,
		UnchangedCount: result.Summary.UnchangedCount,
		SkippedCount:   result.Summary.SkippedTaskCount,
		ConflictCount:  result.Summary.ConflictCount,
		WarningCount:   warningCount,
		RecordedAt:     time.Now().UTC(),
	}
}

func (h *ScheduleHandler) recordRuns(ctx context.Context, records ...domain.ScheduleRunRecord) {
	if h.resultRecorder == nil {
		return
	}
	if err := h.resultRecorder.RecordRuns(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record schedule runs",
			slog.String("error", err.Error()),
		)
	}
}

func requireTenant(c *gin.Context) (string, bool) {
	tenantID := c.GetHeader(tenantHeader)
	if tenantID == "" {
		respondError(c, http.StatusUnauthorized, "unauthorized", "missing tenant")
		return "", false
	}
	return tenantID, true
}

func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoTasksRequested),
		errors.Is(err, domain.ErrInvalidEndDate),
		errors.Is(err, domain.ErrInvalidCursorPolicy):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "processing_error"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
