// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "shutterbook/database/repository/booking"
	photographerRepo "shutterbook/database/repository/photographer"
	"shutterbook/models"
	"shutterbook/services/availability"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"
	"shutterbook/services/pricing"
	"shutterbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingSessionService drives booking drafts over a DraftStore.
type DefaultBookingSessionService struct {
	Store         DraftStore
	Availability  *availability.Index
	Addons        *catalog.AddonCatalog
	Coupons       *coupon.Ledger
	Photographers photographerRepo.PhotographerRepository
	Bookings      bookingRepo.BookingRepository
	SessionTTL    time.Duration
}

func (s *DefaultBookingSessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// breakdown computes the live price view of a draft.
func (s *DefaultBookingSessionService) breakdown(draft *models.BookingDraft) (models.PriceBreakdown, error) {
	addonsTotal, err := s.Addons.Subtotal(draft.Addons)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	var discount models.Money
	if draft.Coupon != nil {
		discount = draft.Coupon.Discount
	}
	return pricing.Compute(draft.HourlyRate, len(draft.Slots), addonsTotal, draft.FeeMode, draft.RushDelivery, discount), nil
}

func (s *DefaultBookingSessionService) view(draft *models.BookingDraft) (*models.DraftView, error) {
	bd, err := s.breakdown(draft)
	if err != nil {
		return nil, err
	}
	return &models.DraftView{Draft: *draft, Breakdown: bd, Ready: draft.ReadyForCheckout()}, nil
}

// saveAndView persists the draft (refreshing its TTL) and returns the view.
func (s *DefaultBookingSessionService) saveAndView(ctx context.Context, draft *models.BookingDraft) (*models.DraftView, error) {
	if err := s.Store.Save(ctx, draft, s.ttl()); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// InitiateSession creates an empty draft for the given photographer, assigns
// it a unique SessionID, and stores it with a TTL.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID, photographerID string, feeMode models.FeeMode) (*models.DraftView, error) {
	p, err := s.Photographers.GetByID(ctx, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer: %w", err)
	}
	if !feeMode.Valid() {
		feeMode = models.FeeModeRush
	}

	draft := &models.BookingDraft{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		PhotographerID: p.ID,
		HourlyRate:     p.HourlyRate,
		FeeMode:        feeMode,
		Addons:         models.AddonSelection{},
		CreatedAt:      time.Now(),
	}
	return s.saveAndView(ctx, draft)
}

// GetSession returns the draft with its live breakdown.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(draft)
}

// SelectDate sets the booking date. Only dates the availability index offers
// are accepted. Changing the date always empties the slot selection, even
// when the new date is valid.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ok, err := s.Availability.IsAvailableDate(date)
	if err != nil || !ok {
		return nil, &DateUnavailableError{Date: date}
	}

	if draft.Date != date {
		draft.Slots = nil
	}
	draft.Date = date
	return s.saveAndView(ctx, draft)
}

// ToggleSlot flips membership of one slot label in the selection. A date must
// be selected first; the label must name a slot from the fixed grid.
func (s *DefaultBookingSessionService) ToggleSlot(ctx context.Context, sessionID, slotLabel string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Date == "" {
		return nil, ErrNoDateSelected
	}
	if !s.Availability.HasSlotLabel(slotLabel) {
		return nil, &UnknownSlotError{Label: slotLabel}
	}

	if draft.HasSlot(slotLabel) {
		kept := draft.Slots[:0]
		for _, l := range draft.Slots {
			if l != slotLabel {
				kept = append(kept, l)
			}
		}
		draft.Slots = kept
	} else {
		draft.Slots = append(draft.Slots, slotLabel)
	}
	return s.saveAndView(ctx, draft)
}

// SetAddonQuantity sets one addon's quantity. Out-of-range quantities are
// rejected before anything is stored; quantity zero removes the entry.
func (s *DefaultBookingSessionService) SetAddonQuantity(ctx context.Context, sessionID string, addonID, quantity int) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Addons.ValidateQuantity(addonID, quantity); err != nil {
		return nil, err
	}

	if draft.Addons == nil {
		draft.Addons = models.AddonSelection{}
	}
	if quantity == 0 {
		delete(draft.Addons, addonID)
	} else {
		draft.Addons[addonID] = quantity
	}
	return s.saveAndView(ctx, draft)
}

// ApplyCoupon validates code against the draft's current subtotal. On any
// failure the draft (including any previously applied coupon) is left
// untouched. A successful apply replaces the prior coupon.
func (s *DefaultBookingSessionService) ApplyCoupon(ctx context.Context, sessionID, code string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	addonsTotal, err := s.Addons.Subtotal(draft.Addons)
	if err != nil {
		return nil, err
	}
	subtotal := draft.HourlyRate*models.Money(len(draft.Slots)) + addonsTotal

	applied, err := s.Coupons.Apply(code, subtotal)
	if err != nil {
		return nil, err
	}

	draft.Coupon = &models.AppliedCoupon{Code: applied.CanonicalCode, Discount: applied.Discount}
	return s.saveAndView(ctx, draft)
}

// RemoveCoupon clears the applied coupon. Idempotent.
func (s *DefaultBookingSessionService) RemoveCoupon(ctx context.Context, sessionID string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.Coupon = nil
	return s.saveAndView(ctx, draft)
}

// SetDetails updates the rush flag and the bounded special-requests text.
func (s *DefaultBookingSessionService) SetDetails(ctx context.Context, sessionID string, rushDelivery bool, specialRequests string) (*models.DraftView, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(specialRequests) > models.MaxSpecialRequestsLen {
		return nil, &TextTooLongError{Field: "specialRequests", Max: models.MaxSpecialRequestsLen}
	}
	draft.RushDelivery = rushDelivery
	draft.SpecialRequests = specialRequests
	return s.saveAndView(ctx, draft)
}

// ConfirmBooking finalizes a ready draft: re-prices it, persists the booking
// record, and drops the session.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !draft.ReadyForCheckout() {
		return nil, ErrNotReady
	}

	bd, err := s.breakdown(draft)
	if err != nil {
		return nil, err
	}
	lines, err := s.Addons.Lines(draft.Addons)
	if err != nil {
		return nil, err
	}

	record := models.Booking{
		ID:              uuid.New().String(),
		PhotographerID:  draft.PhotographerID,
		UserID:          draft.UserID,
		Date:            draft.Date,
		Slots:           append([]string(nil), draft.Slots...),
		Addons:          lines,
		RushDelivery:    draft.RushDelivery,
		SpecialRequests: draft.SpecialRequests,
		Breakdown:       bd,
		Status:          "confirmed",
		CreatedAt:       time.Now(),
	}
	if draft.Coupon != nil {
		record.CouponCode = draft.Coupon.Code
	}

	if err := s.Bookings.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		logger.Warn("confirmed booking but failed to drop session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("photographerID", record.PhotographerID),
		zap.Int64("total", int64(bd.Total)))
	return &record, nil
}

// CancelSession allows the client to explicitly discard a booking draft.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}
