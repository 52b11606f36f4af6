package availability

import (
	"testing"
	"time"

	"shutterbook/models"
)

var testGrid = []models.TimeSlot{
	{Start: "9:00 AM", End: "10:00 AM"},
	{Start: "10:00 AM", End: "11:00 AM"},
	{Start: "11:00 AM", End: "12:00 PM"},
}

func fixedClock(t *testing.T, date string) func() time.Time {
	t.Helper()
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", date, err)
	}
	// Mid-day, so time-of-day must not leak into date comparisons.
	return func() time.Time { return d.Add(13 * time.Hour) }
}

func TestIsAvailableDate(t *testing.T) {
	ix := NewIndex(testGrid, []string{"2026-10-02", "2026-12-25"}, WithClock(fixedClock(t, "2026-09-15")))

	tests := []struct {
		name      string
		date      string
		want      bool
		wantError bool
	}{
		{name: "today is available", date: "2026-09-15", want: true},
		{name: "yesterday is not", date: "2026-09-14", want: false},
		{name: "far past is not", date: "2020-01-01", want: false},
		{name: "tomorrow is available", date: "2026-09-16", want: true},
		{name: "blackout date is not", date: "2026-10-02", want: false},
		{name: "second blackout date is not", date: "2026-12-25", want: false},
		{name: "day after blackout is available", date: "2026-10-03", want: true},
		{name: "malformed date errors", date: "10/02/2026", wantError: true},
		{name: "empty date errors", date: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ix.IsAvailableDate(tt.date)
			if tt.wantError {
				if err == nil {
					t.Fatalf("IsAvailableDate(%q): expected error, got none", tt.date)
				}
				return
			}
			if err != nil {
				t.Fatalf("IsAvailableDate(%q): unexpected error: %v", tt.date, err)
			}
			if got != tt.want {
				t.Errorf("IsAvailableDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestPastBlackoutStaysUnavailable(t *testing.T) {
	// A date that is both past and blacked out must be unavailable for being
	// past, independent of blackout membership.
	ix := NewIndex(testGrid, []string{"2026-09-01"}, WithClock(fixedClock(t, "2026-09-15")))
	if ok, _ := ix.IsAvailableDate("2026-09-01"); ok {
		t.Error("past blackout date reported available")
	}
}

func TestListSlotsOrderAndIsolation(t *testing.T) {
	ix := NewIndex(testGrid, nil)

	first := ix.ListSlots()
	if len(first) != len(testGrid) {
		t.Fatalf("ListSlots returned %d slots, want %d", len(first), len(testGrid))
	}
	for i := range testGrid {
		if first[i] != testGrid[i] {
			t.Errorf("slot %d = %+v, want %+v", i, first[i], testGrid[i])
		}
	}

	// Mutating the returned slice must not change the catalog.
	first[0].Start = "mutated"
	second := ix.ListSlots()
	if second[0].Start != "9:00 AM" {
		t.Error("ListSlots result is not isolated from callers")
	}
}

func TestHasSlotLabel(t *testing.T) {
	ix := NewIndex(testGrid, nil)
	if !ix.HasSlotLabel("9:00 AM - 10:00 AM") {
		t.Error("expected canonical label to be in the grid")
	}
	if ix.HasSlotLabel("8:00 AM - 9:00 AM") {
		t.Error("unexpected label reported in grid")
	}
}

func TestAvailableDates(t *testing.T) {
	ix := NewIndex(testGrid, []string{"2026-09-17"}, WithClock(fixedClock(t, "2026-09-15")))

	dates := ix.AvailableDates(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), 5)
	want := []string{"2026-09-15", "2026-09-16", "2026-09-18"}
	if len(dates) != len(want) {
		t.Fatalf("AvailableDates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}
