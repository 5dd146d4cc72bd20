package domain

import (
	"strings"
	"time"
)

// PhaseCode identifies the production stage a task belongs to.
type PhaseCode string

const (
	PhaseCutting       PhaseCode = "ZUS"
	PhaseCNC           PhaseCode = "CNC"
	PhaseProduction    PhaseCode = "PROD"
	PhaseTreatment     PhaseCode = "BEH"
	PhasePreTreatment  PhaseCode = "VORBEH"
	PhasePostTreatment PhaseCode = "NACHBEH"
	PhaseHardware      PhaseCode = "BESCHL"
	PhaseTransport     PhaseCode = "TRANS"
	PhaseInstallation  PhaseCode = "MONT"
)

var phaseStorageNames = map[PhaseCode]string{
	PhaseCutting:       "zuschnitt",
	PhaseCNC:           "cnc",
	PhaseProduction:    "produktion",
	PhaseTreatment:     "behandlung",
	PhasePreTreatment:  "vorbehandlung",
	PhasePostTreatment: "nachbehandlung",
	PhaseHardware:      "beschlaege",
	PhaseTransport:     "transport",
	PhaseInstallation:  "montage",
}

func (p PhaseCode) String() string {
	return string(p)
}

// Valid reports whether p is one of the known production phases.
func (p PhaseCode) Valid() bool {
	_, ok := phaseStorageNames[p]
	return ok
}

// StoragePhase returns the phase name used by the weekly plan tables.
// Codes outside the known set fall back to their lower-cased form.
func (p PhaseCode) StoragePhase() string {
	if name, ok := phaseStorageNames[p]; ok {
		return name
	}
	return strings.ToLower(string(p))
}

type Task struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	TenantID        string     `json:"tenant_id"`
	Title           string     `json:"title"`
	PhaseCode       *PhaseCode `json:"phase_code,omitempty"`
	ResourceID      *string    `json:"resource_id,omitempty"`
	ResourceName    *string    `json:"resource_name,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	StartDate       *string    `json:"start_date,omitempty"`
	DueDate         *string    `json:"due_date,omitempty"`
}

// HasSchedule reports whether the task already carries any schedule state.
func (t *Task) HasSchedule(intervals []WorkInterval) bool {
	return len(intervals) > 0 || t.StartDate != nil || t.DueDate != nil
}

type WorkInterval struct {
	TaskID    string    `json:"task_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsFixed   bool      `json:"is_fixed"`
}

// Booking is a work interval of a task outside the rescheduled batch,
// joined with the resource it occupies.
type Booking struct {
	TaskID       string    `json:"task_id"`
	TaskTitle    string    `json:"task_title"`
	ResourceID   string    `json:"resource_id"`
	ResourceName *string   `json:"resource_name,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// ProjectCalendar holds the per-project workday settings.
type ProjectCalendar struct {
	ProjectID       string
	IncludeWeekends bool
	WorkdayStart    string
	WorkdayEnd      string
}

type PhasePlacement struct {
	TaskID  string
	Phase   string
	ISOWeek int
	ISOYear int
}

const DateLayout = "2006-01-02"

// DateKey formats t as a calendar date in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
