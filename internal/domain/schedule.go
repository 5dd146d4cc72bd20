package domain

import (
	"time"
)

// Action classifies a task's proposed schedule against its persisted one.
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionUnchanged Action = "unchanged"
	ActionSkipped   Action = "skipped"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionUnchanged, ActionSkipped:
		return true
	}
	return false
}

// Rewrites reports whether applying the action replaces intervals and dates.
func (a Action) Rewrites() bool {
	return a == ActionCreate || a == ActionUpdate
}

// CursorPolicy decides where each task's backward packing starts.
type CursorPolicy string

const (
	// CursorChained threads one cursor through the task list back to front,
	// so tasks stack backward from the deadline as a single timeline.
	CursorChained CursorPolicy = "chained"
	// CursorIndependent packs every task from the deadline anchor.
	CursorIndependent CursorPolicy = "independent"
)

func (p CursorPolicy) String() string {
	return string(p)
}

func (p CursorPolicy) Valid() bool {
	return p == CursorChained || p == CursorIndependent
}

const (
	ReasonInvalidWorkday = "Invalid workday configuration"
	ReasonTaskNotFound   = "Task not found"
	ReasonFixedSlots     = "Has fixed work slots"
	ReasonNoDuration     = "No duration configured"
)

type ProposedSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (s ProposedSlot) Minutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Overlaps reports a half-open interval intersection.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

type TaskPlan struct {
	TaskID          string         `json:"task_id"`
	Title           string         `json:"title"`
	PhaseCode       *PhaseCode     `json:"phase_code"`
	ResourceID      *string        `json:"resource_id"`
	ResourceName    *string        `json:"resource_name,omitempty"`
	Action          Action         `json:"action"`
	Reason          *string        `json:"reason"`
	DurationMinutes *int           `json:"duration_minutes"`
	StartDate       *string        `json:"start_date"`
	DueDate         *string        `json:"due_date"`
	SlotCount       int            `json:"slot_count"`
	Slots           []ProposedSlot `json:"slots"`
}

// NewSkippedPlan builds a skipped plan for taskID. task may be nil when the
// task could not be loaded.
func NewSkippedPlan(taskID string, task *Task, reason string) TaskPlan {
	plan := TaskPlan{
		TaskID: taskID,
		Title:  taskID,
		Action: ActionSkipped,
		Reason: &reason,
		Slots:  []ProposedSlot{},
	}
	if task != nil {
		plan.Title = task.Title
		plan.PhaseCode = task.PhaseCode
		plan.ResourceID = task.ResourceID
		plan.ResourceName = task.ResourceName
		plan.DurationMinutes = task.DurationMinutes
	}
	return plan
}

type Conflict struct {
	TaskID            string    `json:"task_id"`
	TaskTitle         string    `json:"task_title"`
	ResourceID        string    `json:"resource_id"`
	ResourceName      *string   `json:"resource_name"`
	ProposedStartTime time.Time `json:"proposed_start_time"`
	ProposedEndTime   time.Time `json:"proposed_end_time"`
	ConflictTaskID    string    `json:"conflict_task_id"`
	ConflictTaskTitle string    `json:"conflict_task_title"`
	ConflictStartTime time.Time `json:"conflict_start_time"`
	ConflictEndTime   time.Time `json:"conflict_end_time"`
}

type Summary struct {
	SelectedTaskCount  int `json:"selected_task_count"`
	ScheduledTaskCount int `json:"scheduled_task_count"`
	SkippedTaskCount   int `json:"skipped_task_count"`
	CreateCount        int `json:"create_count"`
	UpdateCount        int `json:"update_count"`
	UnchangedCount     int `json:"unchanged_count"`
	ConflictCount      int `json:"conflict_count"`
}

func NewSummary(taskIDs []string, plans []TaskPlan, conflicts []Conflict) Summary {
	summary := Summary{
		SelectedTaskCount: len(taskIDs),
		ConflictCount:     len(conflicts),
	}
	for _, plan := range plans {
		switch plan.Action {
		case ActionCreate:
			summary.CreateCount++
		case ActionUpdate:
			summary.UpdateCount++
		case ActionUnchanged:
			summary.UnchangedCount++
		case ActionSkipped:
			summary.SkippedTaskCount++
		}
	}
	summary.ScheduledTaskCount = len(plans) - summary.SkippedTaskCount
	return summary
}

type PreviewOptions struct {
	ProjectID       string
	TenantID        string
	TaskIDs         []string
	EndDate         string
	IncludeWeekends bool
	WorkdayStart    string
	WorkdayEnd      string
	CursorPolicy    CursorPolicy
	Location        *time.Location
}

// PreviewResult is the immutable outcome of a preview. Apply consumes it as is.
type PreviewResult struct {
	ID              string       `json:"id"`
	ProjectID       string       `json:"project_id"`
	TenantID        string       `json:"tenant_id"`
	EndDate         string       `json:"end_date"`
	TaskIDs         []string     `json:"task_ids"`
	IncludeWeekends bool         `json:"include_weekends"`
	WorkdayStart    string       `json:"workday_start"`
	WorkdayEnd      string       `json:"workday_end"`
	CursorPolicy    CursorPolicy `json:"cursor_policy"`
	Timezone        string       `json:"timezone"`
	Summary         Summary      `json:"summary"`
	Tasks           []TaskPlan   `json:"tasks"`
	Conflicts       []Conflict   `json:"conflicts"`
	Warnings        []string     `json:"warnings"`
	CreatedAt       time.Time    `json:"created_at"`
}

type ApplyResult struct {
	PreviewID        string   `json:"preview_id"`
	ScheduledTaskIDs []string `json:"scheduled_task_ids"`
	SkippedTaskIDs   []string `json:"skipped_task_ids"`
	Warnings         []string `json:"warnings"`
}
