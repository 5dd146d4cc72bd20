package workday

import "time"

// Calendar decides which days may carry work.
type Calendar struct {
	IncludeWeekends bool
}

func NewCalendar(includeWeekends bool) Calendar {
	return Calendar{IncludeWeekends: includeWeekends}
}

func (c Calendar) IsEligible(t time.Time) bool {
	if c.IncludeWeekends {
		return true
	}
	day := t.Weekday()
	return day != time.Saturday && day != time.Sunday
}

// PreviousEligible steps back one day at a time until an eligible day is
// found. The result is always strictly before t and keeps its wall-clock time.
func (c Calendar) PreviousEligible(t time.Time) time.Time {
	prev := t.AddDate(0, 0, -1)
	for !c.IsEligible(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}
