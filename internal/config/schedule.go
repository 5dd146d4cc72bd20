package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
	"github.com/KasumiMercury/production-autoschedule/internal/service/workday"
)

const (
	scheduleWorkdayStartEnv     = "SCHEDULE_WORKDAY_START"
	scheduleWorkdayEndEnv       = "SCHEDULE_WORKDAY_END"
	scheduleIncludeWeekendsEnv  = "SCHEDULE_INCLUDE_WEEKENDS"
	scheduleTimezoneEnv         = "SCHEDULE_TIMEZONE"
	scheduleCursorPolicyEnv     = "SCHEDULE_CURSOR_POLICY"
	schedulePreviewTTLEnv       = "SCHEDULE_PREVIEW_TTL_MINUTES"
	scheduleOperationTimeoutEnv = "SCHEDULE_OPERATION_TIMEOUT_SECONDS"
	scheduleMaxTasksEnv         = "SCHEDULE_MAX_TASKS"

	defaultWorkdayStart            = "08:00"
	defaultWorkdayEnd              = "17:00"
	defaultTimezone                = "UTC"
	defaultPreviewTTLMinutes       = 30
	defaultOperationTimeoutSeconds = 30
	defaultMaxTasks                = 500
)

// ScheduleConfig holds the defaults used when neither the request nor the
// project calendar specifies a value.
type ScheduleConfig struct {
	WorkdayStart     string
	WorkdayEnd       string
	IncludeWeekends  bool
	Location         *time.Location
	CursorPolicy     domain.CursorPolicy
	PreviewTTL       time.Duration
	OperationTimeout time.Duration
	MaxTasks         int
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	start := os.Getenv(scheduleWorkdayStartEnv)
	if start == "" {
		start = defaultWorkdayStart
	}
	end := os.Getenv(scheduleWorkdayEndEnv)
	if end == "" {
		end = defaultWorkdayEnd
	}

	tz := os.Getenv(scheduleTimezoneEnv)
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	policy := domain.CursorPolicy(strings.ToLower(os.Getenv(scheduleCursorPolicyEnv)))
	if policy == "" {
		policy = domain.CursorChained
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCursorPolicy, policy)
	}

	return &ScheduleConfig{
		WorkdayStart:     start,
		WorkdayEnd:       end,
		IncludeWeekends:  os.Getenv(scheduleIncludeWeekendsEnv) == "true",
		Location:         loc,
		CursorPolicy:     policy,
		PreviewTTL:       time.Duration(positiveInt(schedulePreviewTTLEnv, defaultPreviewTTLMinutes)) * time.Minute,
		OperationTimeout: time.Duration(positiveInt(scheduleOperationTimeoutEnv, defaultOperationTimeoutSeconds)) * time.Second,
		MaxTasks:         positiveInt(scheduleMaxTasksEnv, defaultMaxTasks),
	}, nil
}

func (c *ScheduleConfig) Validate() error {
	window, err := workday.ParseWindow(c.WorkdayStart, c.WorkdayEnd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkday, err)
	}
	if err := window.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkday, err)
	}
	return nil
}
