package handler

import (
	"errors"
	"fmt"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/service/workday"
)

const tenantHeader = "X-Tenant-ID"

var errTooManyTasks = errors.New("too many tasks requested")

type previewRequest struct {
	TaskIDs         []string `json:"taskIds" binding:"required,min=1,unique,dive,uuid"`
	EndDate         string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	IncludeWeekends *bool    `json:"includeWeekends"`
	WorkdayStart    *string  `json:"workdayStart"`
	WorkdayEnd      *string  `json:"workdayEnd"`
	CursorPolicy    *string  `json:"cursorPolicy" binding:"omitempty,oneof=chained independent"`
}

// validate checks what the binding tags cannot express.
func (r *previewRequest) validate(maxTasks int) error {
	if maxTasks > 0 && len(r.TaskIDs) > maxTasks {
		return fmt.Errorf("%w: %d > %d", errTooManyTasks, len(r.TaskIDs), maxTasks)
	}
	for _, value := range []*string{r.WorkdayStart, r.WorkdayEnd} {
		if value == nil {
			continue
		}
		if _, err := workday.ParseTimeOfDay(*value); err != nil {
			return err
		}
	}
	return nil
}

type applyRequest struct {
	PreviewID string `json:"previewId" binding:"required,uuid"`
}

type autoScheduleResponse struct {
	Preview *domain.PreviewResult `json:"preview"`
	Apply   *domain.ApplyResult   `json:"apply"`
}
