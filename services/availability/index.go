// Package availability answers which calendar dates are offered for booking
// and enumerates the fixed time-slot grid. Pure computation over catalog data
// plus a clock.
package availability

import (
	"time"

	"shutterbook/models"
)

// DateLayout is the canonical date-only key format.
const DateLayout = "2006-01-02"

// Index holds the blackout-date set and the fixed slot grid.
type Index struct {
	slots     []models.TimeSlot
	labels    map[string]struct{}
	blackouts map[string]struct{}
	now       func() time.Time
}

// Option customizes an Index.
type Option func(*Index)

// WithClock injects the time source, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(ix *Index) {
		ix.now = now
	}
}

// NewIndex builds an Index over the given slot grid and blackout dates
// (each "YYYY-MM-DD").
func NewIndex(slots []models.TimeSlot, blackoutDates []string, opts ...Option) *Index {
	ix := &Index{
		slots:     append([]models.TimeSlot(nil), slots...),
		labels:    make(map[string]struct{}, len(slots)),
		blackouts: make(map[string]struct{}, len(blackoutDates)),
		now:       time.Now,
	}
	for _, s := range slots {
		ix.labels[s.Label()] = struct{}{}
	}
	for _, d := range blackoutDates {
		ix.blackouts[d] = struct{}{}
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// IsAvailable reports whether the given date is offered: today or later
// (date-only comparison) and not blacked out. Past dates are never available,
// blackout membership notwithstanding.
func (ix *Index) IsAvailable(date time.Time) bool {
	now := ix.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	_, blocked := ix.blackouts[day.Format(DateLayout)]
	return !blocked
}

// IsAvailableDate is IsAvailable over a "YYYY-MM-DD" string. Malformed input
// is reported as unavailable along with the parse error.
func (ix *Index) IsAvailableDate(date string) (bool, error) {
	d, err := time.ParseInLocation(DateLayout, date, ix.now().Location())
	if err != nil {
		return false, err
	}
	return ix.IsAvailable(d), nil
}

// ListSlots returns the fixed slot grid in catalog order. The result is a
// copy; callers may not mutate the grid.
func (ix *Index) ListSlots() []models.TimeSlot {
	return append([]models.TimeSlot(nil), ix.slots...)
}

// HasSlotLabel reports whether the canonical label names a slot in the grid.
func (ix *Index) HasSlotLabel(label string) bool {
	_, ok := ix.labels[label]
	return ok
}

// AvailableDates enumerates the available dates in the window starting at
// from (inclusive) spanning the given number of days.
func (ix *Index) AvailableDates(from time.Time, days int) []string {
	var dates []string
	for d, i := from, 0; i < days; d, i = d.AddDate(0, 0, 1), i+1 {
		if ix.IsAvailable(d) {
			dates = append(dates, d.Format(DateLayout))
		}
	}
	return dates
}
