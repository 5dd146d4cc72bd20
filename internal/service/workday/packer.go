package workday

import (
	"fmt"
	"slices"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

// Packer fills a minute budget backward from a cursor into the daily window.
type Packer struct {
	window   Window
	calendar Calendar
}

func NewPacker(window Window, calendar Calendar) (*Packer, error) {
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("new packer: %w", err)
	}
	return &Packer{
		window:   window,
		calendar: calendar,
	}, nil
}

// Anchor returns the starting cursor for a deadline: the workday end of
// endDate, moved back to the last eligible day when endDate is not one.
func (p *Packer) Anchor(endDate time.Time) time.Time {
	return p.settle(p.window.EndOn(endDate))
}

// Pack consumes durationMinutes ending at or before cursor and returns the
// slots in chronological order together with the cursor left behind, which
// is where a chained predecessor continues.
func (p *Packer) Pack(cursor time.Time, durationMinutes int) ([]domain.ProposedSlot, time.Time) {
	cursor = p.settle(cursor)
	if minuteOfDay(cursor) > p.window.EndMinute {
		cursor = p.window.EndOn(cursor)
	}

	slots := make([]domain.ProposedSlot, 0, 1)
	remaining := durationMinutes

	for remaining > 0 {
		available := minuteOfDay(cursor) - p.window.StartMinute
		if available <= 0 {
			cursor = p.rollBack(cursor)
			continue
		}

		taken := min(remaining, available)
		start := cursor.Add(-time.Duration(taken) * time.Minute)
		slots = append(slots, domain.ProposedSlot{StartTime: start, EndTime: cursor})
		remaining -= taken
		cursor = start

		if minuteOfDay(cursor) <= p.window.StartMinute {
			cursor = p.rollBack(cursor)
		}
	}

	slices.Reverse(slots)
	return slots, cursor
}

// rollBack moves the cursor to the workday end of the previous eligible day.
func (p *Packer) rollBack(cursor time.Time) time.Time {
	return p.window.EndOn(p.calendar.PreviousEligible(cursor))
}

func (p *Packer) settle(cursor time.Time) time.Time {
	for !p.calendar.IsEligible(cursor) {
		cursor = p.rollBack(cursor)
	}
	return cursor
}
