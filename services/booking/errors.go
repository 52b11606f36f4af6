package booking

import (
	"errors"
	"fmt"
)

// Draft-session errors. All are caller-recoverable; the handler layer maps
// them to 4xx responses.
var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
	ErrNoDateSelected  = errors.New("no date selected for this booking")
	ErrNotReady        = errors.New("booking is not ready for checkout: select a date and at least one time slot")
)

// DateUnavailableError reports a date rejected by the availability index.
type DateUnavailableError struct {
	Date string
}

func (e *DateUnavailableError) Error() string {
	return fmt.Sprintf("date %q is not available for booking", e.Date)
}

// UnknownSlotError reports a slot label absent from the fixed grid.
type UnknownSlotError struct {
	Label string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("time slot %q is not in the slot catalog", e.Label)
}

// TextTooLongError reports free text exceeding its bound.
type TextTooLongError struct {
	Field string
	Max   int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("%s exceeds the maximum length of %d characters", e.Field, e.Max)
}
