package workday

import (
	"errors"
	"testing"
	"time"
)

func mustPacker(t *testing.T, start, end string, includeWeekends bool) *Packer {
	t.Helper()

	window, err := ParseWindow(start, end)
	if err != nil {
		t.Fatalf("ParseWindow(%q, %q) error = %v", start, end, err)
	}
	packer, err := NewPacker(window, NewCalendar(includeWeekends))
	if err != nil {
		t.Fatalf("NewPacker() error = %v", err)
	}
	return packer
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestPacker_Anchor(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	tests := []struct {
		name    string
		endDate time.Time
		want    time.Time
	}{
		{
			name:    "weekday deadline anchors at workday end",
			endDate: date(2026, time.February, 13),
			want:    at(2026, time.February, 13, 17, 0),
		},
		{
			name:    "saturday deadline moves to friday",
			endDate: date(2026, time.February, 14),
			want:    at(2026, time.February, 13, 17, 0),
		},
		{
			name:    "sunday deadline moves to friday",
			endDate: date(2026, time.February, 15),
			want:    at(2026, time.February, 13, 17, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packer.Anchor(tt.endDate)
			if !got.Equal(tt.want) {
				t.Errorf("Anchor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPacker_Pack_SingleDay(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	// Friday deadline, 120 minutes.
	cursor := packer.Anchor(date(2026, time.February, 13))
	slots, next := packer.Pack(cursor, 120)

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].StartTime.Equal(at(2026, time.February, 13, 15, 0)) {
		t.Errorf("slot start = %v, want 15:00", slots[0].StartTime)
	}
	if !slots[0].EndTime.Equal(at(2026, time.February, 13, 17, 0)) {
		t.Errorf("slot end = %v, want 17:00", slots[0].EndTime)
	}
	if !next.Equal(at(2026, time.February, 13, 15, 0)) {
		t.Errorf("next cursor = %v, want 15:00", next)
	}
}

func TestPacker_Pack_SpillsOverWeekend(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	// Monday deadline, 600 minutes: the full Monday plus one hour on Friday.
	cursor := packer.Anchor(date(2026, time.February, 16))
	slots, next := packer.Pack(cursor, 600)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}

	wantSlots := [][2]time.Time{
		{at(2026, time.February, 13, 16, 0), at(2026, time.February, 13, 17, 0)},
		{at(2026, time.February, 16, 8, 0), at(2026, time.February, 16, 17, 0)},
	}
	for i, want := range wantSlots {
		if !slots[i].StartTime.Equal(want[0]) || !slots[i].EndTime.Equal(want[1]) {
			t.Errorf("slots[%d] = [%v, %v), want [%v, %v)", i, slots[i].StartTime, slots[i].EndTime, want[0], want[1])
		}
	}
	if !next.Equal(at(2026, time.February, 13, 16, 0)) {
		t.Errorf("next cursor = %v, want friday 16:00", next)
	}

	for _, slot := range slots {
		if wd := slot.StartTime.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot on weekend: %v", slot.StartTime)
		}
	}
}

func TestPacker_Pack_WeekendsIncluded(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", true)

	cursor := packer.Anchor(date(2026, time.February, 16))
	slots, _ := packer.Pack(cursor, 600)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if !slots[0].StartTime.Equal(at(2026, time.February, 15, 16, 0)) {
		t.Errorf("first slot start = %v, want sunday 16:00", slots[0].StartTime)
	}
}

func TestPacker_Pack_ChainedCursor(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	cursor := packer.Anchor(date(2026, time.February, 13))
	later, cursor := packer.Pack(cursor, 60)
	earlier, _ := packer.Pack(cursor, 60)

	if !earlier[0].EndTime.Equal(later[0].StartTime) {
		t.Errorf("earlier task ends %v, want %v", earlier[0].EndTime, later[0].StartTime)
	}
	if !earlier[0].StartTime.Equal(at(2026, time.February, 13, 15, 0)) {
		t.Errorf("earlier task starts %v, want 15:00", earlier[0].StartTime)
	}
}

func TestPacker_Pack_CursorAtWindowStartRollsBack(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	// Monday 08:00 leaves nothing on Monday.
	slots, _ := packer.Pack(at(2026, time.February, 16, 8, 0), 30)

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].StartTime.Equal(at(2026, time.February, 13, 16, 30)) {
		t.Errorf("slot start = %v, want friday 16:30", slots[0].StartTime)
	}
}

func TestPacker_Pack_CursorPastWindowEndIsClamped(t *testing.T) {
	packer := mustPacker(t, "08:00", "17:00", false)

	slots, _ := packer.Pack(at(2026, time.February, 13, 20, 0), 60)

	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].EndTime.Equal(at(2026, time.February, 13, 17, 0)) {
		t.Errorf("slot end = %v, want 17:00", slots[0].EndTime)
	}
}

func TestPacker_Pack_Invariants(t *testing.T) {
	packer := mustPacker(t, "07:30", "16:15", false)
	window := packer.window

	durations := []int{1, 45, 525, 526, 1000, 2400, 5000}
	for _, duration := range durations {
		cursor := packer.Anchor(date(2026, time.March, 4))
		slots, _ := packer.Pack(cursor, duration)

		total := 0
		for i, slot := range slots {
			total += slot.Minutes()

			if !slot.StartTime.Before(slot.EndTime) {
				t.Errorf("duration %d: slot %d is empty", duration, i)
			}
			if minuteOfDay(slot.StartTime) < window.StartMinute {
				t.Errorf("duration %d: slot %d starts before window: %v", duration, i, slot.StartTime)
			}
			if minuteOfDay(slot.EndTime) > window.EndMinute {
				t.Errorf("duration %d: slot %d ends after window: %v", duration, i, slot.EndTime)
			}
			if slot.StartTime.YearDay() != slot.EndTime.YearDay() {
				t.Errorf("duration %d: slot %d spans days", duration, i)
			}
			if i > 0 && slots[i-1].EndTime.After(slot.StartTime) {
				t.Errorf("duration %d: slots %d and %d out of order", duration, i-1, i)
			}
		}
		if total != duration {
			t.Errorf("duration %d: packed %d minutes", duration, total)
		}
	}
}

func TestNewPacker_RejectsEmptyWindow(t *testing.T) {
	tests := []struct {
		name   string
		window Window
	}{
		{"equal bounds", Window{StartMinute: 480, EndMinute: 480}},
		{"inverted bounds", Window{StartMinute: 1020, EndMinute: 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPacker(tt.window, NewCalendar(false))
			if !errors.Is(err, ErrEmptyWorkdayWindow) {
				t.Errorf("NewPacker() error = %v, want %v", err, ErrEmptyWorkdayWindow)
			}
		})
	}
}
