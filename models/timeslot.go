package models

import "fmt"

// TimeSlot represents one bookable window from the fixed slot grid.
// The grid is catalog data, never user-created.
type TimeSlot struct {
	Start string `bson:"start" json:"start"` // e.g., "9:00 AM"
	End   string `bson:"end" json:"end"`     // e.g., "10:00 AM"
}

// Label renders the canonical slot label used as the selection key.
func (t TimeSlot) Label() string {
	return fmt.Sprintf("%s - %s", t.Start, t.End)
}
