// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"shutterbook/models"
)

// DraftStore holds booking drafts keyed by session id, with a TTL. Redis in
// production; an in-memory store backs the unit tests.
type DraftStore interface {
	Save(ctx context.Context, draft *models.BookingDraft, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// BookingSessionService drives the booking draft through its lifecycle:
// create, select date, toggle slots, adjust addons, apply/remove coupon,
// set details, confirm or cancel.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, userID, photographerID string, feeMode models.FeeMode) (*models.DraftView, error)
	GetSession(ctx context.Context, sessionID string) (*models.DraftView, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.DraftView, error)
	ToggleSlot(ctx context.Context, sessionID, slotLabel string) (*models.DraftView, error)
	SetAddonQuantity(ctx context.Context, sessionID string, addonID, quantity int) (*models.DraftView, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*models.DraftView, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*models.DraftView, error)
	SetDetails(ctx context.Context, sessionID string, rushDelivery bool, specialRequests string) (*models.DraftView, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}
