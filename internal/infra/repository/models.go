package repository

import (
	"time"

	"gorm.io/gorm"
)

type projectModel struct {
	ID              string         `gorm:"type:uuid;primaryKey"`
	TenantID        string         `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"not null"`
	IncludeWeekends bool           `gorm:"not null;default:false"`
	WorkdayStart    string         `gorm:"type:time;not null;default:'08:00'"`
	WorkdayEnd      string         `gorm:"type:time;not null;default:'17:00'"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (projectModel) TableName() string { return "projects" }

type resourceModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	TenantID string `gorm:"type:uuid;not null;index"`
	Name     string `gorm:"not null"`
}

func (resourceModel) TableName() string { return "resources" }

type taskModel struct {
	ID              string         `gorm:"type:uuid;primaryKey"`
	TenantID        string         `gorm:"type:uuid;not null;index"`
	ProjectID       string         `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"not null"`
	PhaseCode       *string        `gorm:"size:16"`
	ResourceID      *string        `gorm:"type:uuid;index"`
	StartDate       *time.Time     `gorm:"type:date"`
	DueDate         *time.Time     `gorm:"type:date"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (taskModel) TableName() string { return "tasks" }

type workIntervalModel struct {
	ID              uint64    `gorm:"primaryKey"`
	TaskID          string    `gorm:"type:uuid;not null;index"`
	StartTime       time.Time `gorm:"type:timestamptz;not null"`
	EndTime         time.Time `gorm:"type:timestamptz;not null"`
	IsFixed         bool      `gorm:"not null;default:false"`
	IsAllDay        bool      `gorm:"not null;default:false"`
	ReminderEnabled bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
}

func (workIntervalModel) TableName() string { return "task_work_slots" }

type phasePlacementModel struct {
	ID          uint64 `gorm:"primaryKey"`
	TaskID      string `gorm:"type:uuid;not null;uniqueIndex:idx_task_phase"`
	Phase       string `gorm:"size:32;not null;uniqueIndex:idx_task_phase"`
	PlannedKW   int    `gorm:"column:planned_kw;not null"`
	PlannedYear int    `gorm:"not null"`
	Status      string `gorm:"size:16;not null;default:'planned'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (phasePlacementModel) TableName() string { return "task_phase_schedules" }

// taskRow is a task joined with the name of its resource.
type taskRow struct {
	ID              string
	TenantID        string
	ProjectID       string
	Title           string
	PhaseCode       *string
	ResourceID      *string
	ResourceName    *string
	DurationMinutes *int
	StartDate       *time.Time
	DueDate         *time.Time
}

type bookingRow struct {
	TaskID       string
	TaskTitle    string
	ResourceID   string
	ResourceName *string
	StartTime    time.Time
	EndTime      time.Time
}

// Models lists every table owned by the schedule store, in dependency order.
func Models() []any {
	return []any{
		&projectModel{},
		&resourceModel{},
		&taskModel{},
		&workIntervalModel{},
		&phasePlacementModel{},
	}
}
