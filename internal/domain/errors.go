package domain

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrPreviewNotFound     = errors.New("preview not found")
	ErrPreviewMismatch     = errors.New("preview belongs to another project")
	ErrTenantMismatch      = errors.New("preview belongs to another tenant")
	ErrNoTasksRequested    = errors.New("no task ids requested")
	ErrInvalidEndDate      = errors.New("invalid end date")
	ErrInvalidCursorPolicy = errors.New("invalid cursor policy")
)
