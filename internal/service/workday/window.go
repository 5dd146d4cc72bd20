package workday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrEmptyWorkdayWindow = errors.New("workday window is empty")
)

// Window is the daily span in which work may be scheduled, in minutes from
// midnight.
type Window struct {
	StartMinute int
	EndMinute   int
}

// ParseWindow resolves "HH:MM" (or "HH:MM:SS") start and end times. It does
// not reject empty or inverted windows; use Validate for that.
func ParseWindow(start, end string) (Window, error) {
	startMinute, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, fmt.Errorf("workday start: %w", err)
	}
	endMinute, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, fmt.Errorf("workday end: %w", err)
	}
	return Window{StartMinute: startMinute, EndMinute: endMinute}, nil
}

// ParseTimeOfDay converts "HH:MM" or "HH:MM:SS" to minutes from midnight.
// Seconds are accepted for Postgres time columns and ignored.
func ParseTimeOfDay(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
		}
	}

	return hour*60 + minute, nil
}

func (w Window) TotalMinutes() int {
	return w.EndMinute - w.StartMinute
}

func (w Window) Validate() error {
	if w.TotalMinutes() <= 0 {
		return ErrEmptyWorkdayWindow
	}
	return nil
}

// StartOn returns the workday start on the calendar day of t.
func (w Window) StartOn(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, w.StartMinute, 0, 0, t.Location())
}

// EndOn returns the workday end on the calendar day of t.
func (w Window) EndOn(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, w.EndMinute, 0, 0, t.Location())
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
