package booking

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	photographerRepo "shutterbook/database/repository/photographer"
	"shutterbook/models"
	"shutterbook/services/availability"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDraftStore is a DraftStore for tests. Drafts round-trip through JSON
// so the tests exercise the same serialization the Redis store uses.
type memoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *memoryDraftStore) Save(_ context.Context, draft *models.BookingDraft, _ time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = data
	return nil
}

func (s *memoryDraftStore) Get(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *memoryDraftStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

// fakePhotographerRepo serves a single fixture photographer.
type fakePhotographerRepo struct {
	photographer models.Photographer
}

func (r *fakePhotographerRepo) GetByID(_ context.Context, id string) (*models.Photographer, error) {
	if id != r.photographer.ID {
		return nil, photographerRepo.ErrNotFound
	}
	p := r.photographer
	return &p, nil
}

func (r *fakePhotographerRepo) List(context.Context, models.PhotographerFilter) ([]models.Photographer, error) {
	return []models.Photographer{r.photographer}, nil
}

func (r *fakePhotographerRepo) AddPortfolioURL(context.Context, string, string) error {
	return nil
}

// fakeBookingRepo records inserted bookings.
type fakeBookingRepo struct {
	mu       sync.Mutex
	inserted []models.Booking
}

func (r *fakeBookingRepo) Insert(_ context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, b)
	return nil
}

func (r *fakeBookingRepo) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListByUser(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) ListAll(context.Context, int64) ([]models.Booking, error) {
	return nil, nil
}

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	}
}

func newTestService(t *testing.T) (*DefaultBookingSessionService, *fakeBookingRepo) {
	t.Helper()

	grid := []models.TimeSlot{
		{Start: "9:00 AM", End: "10:00 AM"},
		{Start: "10:00 AM", End: "11:00 AM"},
		{Start: "11:00 AM", End: "12:00 PM"},
	}
	addons := catalog.NewAddonCatalog([]models.Addon{
		{ID: 1, Name: "Premium Photo Album", UnitPrice: 1500},
		{ID: 2, Name: "Drone Coverage", UnitPrice: 2000},
	})
	coupons := coupon.NewLedger([]models.Coupon{
		{Code: "PHOTO100", DiscountValue: 100, MinOrderAmount: 1000},
		{Code: "SAVE200", DiscountValue: 200, MinOrderAmount: 2000},
	})

	bookings := &fakeBookingRepo{}
	svc := &DefaultBookingSessionService{
		Store:        newMemoryDraftStore(),
		Availability: availability.NewIndex(grid, []string{"2026-10-02"}, availability.WithClock(testClock())),
		Addons:       addons,
		Coupons:      coupons,
		Photographers: &fakePhotographerRepo{photographer: models.Photographer{
			ID:         "ph-1",
			Name:       "Asha Rao",
			HourlyRate: 500,
		}},
		Bookings: bookings,
	}
	return svc, bookings
}

func TestInitiateSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)

	assert.NotEmpty(t, view.Draft.SessionID)
	assert.Equal(t, "ph-1", view.Draft.PhotographerID)
	assert.Equal(t, models.Money(500), view.Draft.HourlyRate)
	assert.Equal(t, models.FeeModeRush, view.Draft.FeeMode, "fee mode defaults to rush")
	assert.False(t, view.Ready)
	assert.Equal(t, models.Money(0), view.Breakdown.Total)
}

func TestInitiateSessionUnknownPhotographer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.InitiateSession(context.Background(), "user-1", "ph-404", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, photographerRepo.ErrNotFound)
}

func TestSelectDateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	var unavailable *DateUnavailableError

	_, err = svc.SelectDate(ctx, id, "2026-09-14") // yesterday
	require.ErrorAs(t, err, &unavailable)

	_, err = svc.SelectDate(ctx, id, "2026-10-02") // blackout
	require.ErrorAs(t, err, &unavailable)

	_, err = svc.SelectDate(ctx, id, "not-a-date")
	require.ErrorAs(t, err, &unavailable)

	view, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20", view.Draft.Date)
}

func TestChangingDateClearsSlots(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	view, err = svc.ToggleSlot(ctx, id, "10:00 AM - 11:00 AM")
	require.NoError(t, err)
	require.Len(t, view.Draft.Slots, 2)

	// Switching to another valid date must empty the slot set.
	view, err = svc.SelectDate(ctx, id, "2026-09-21")
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Slots)
	assert.False(t, view.Ready)

	// Re-selecting the same date keeps the slots.
	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	view, err = svc.SelectDate(ctx, id, "2026-09-21")
	require.NoError(t, err)
	assert.Len(t, view.Draft.Slots, 1)
}

func TestToggleSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	// Slots are only meaningful once a date is selected.
	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	assert.ErrorIs(t, err, ErrNoDateSelected)

	_, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)

	var unknownSlot *UnknownSlotError
	_, err = svc.ToggleSlot(ctx, id, "6:00 AM - 7:00 AM")
	require.ErrorAs(t, err, &unknownSlot)

	view, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM - 10:00 AM"}, view.Draft.Slots)
	assert.Equal(t, models.Money(500), view.Breakdown.BasePrice)

	// Toggling again deselects.
	view, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Slots)
}

func TestSetAddonQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	var badQty *catalog.InvalidQuantityError
	_, err = svc.SetAddonQuantity(ctx, id, 2, 11)
	require.ErrorAs(t, err, &badQty)

	var notFound *catalog.NotFoundError
	_, err = svc.SetAddonQuantity(ctx, id, 42, 1)
	require.ErrorAs(t, err, &notFound)

	// Rejected updates must not have touched the draft.
	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Addons)

	view, err = svc.SetAddonQuantity(ctx, id, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Money(2000), view.Breakdown.AddonsTotal)

	// Setting the current quantity again changes nothing.
	again, err := svc.SetAddonQuantity(ctx, id, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, view.Breakdown.AddonsTotal, again.Breakdown.AddonsTotal)

	// Quantity zero removes the entry rather than storing a zero.
	view, err = svc.SetAddonQuantity(ctx, id, 2, 0)
	require.NoError(t, err)
	assert.NotContains(t, view.Draft.Addons, 2)
	assert.Equal(t, models.Money(0), view.Breakdown.AddonsTotal)
}

func TestApplyCouponFailureLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "10:00 AM - 11:00 AM")
	require.NoError(t, err)
	// subtotal = 500 * 2 = 1000

	view, err = svc.ApplyCoupon(ctx, id, "photo100")
	require.NoError(t, err)
	require.NotNil(t, view.Draft.Coupon)
	assert.Equal(t, "PHOTO100", view.Draft.Coupon.Code)
	assert.Equal(t, models.Money(100), view.Breakdown.Discount)

	// SAVE200 needs a 2000 subtotal; the failed apply must leave PHOTO100 active.
	var minOrder *coupon.MinimumOrderNotMetError
	_, err = svc.ApplyCoupon(ctx, id, "SAVE200")
	require.ErrorAs(t, err, &minOrder)
	assert.Equal(t, models.Money(2000), minOrder.Required)

	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, view.Draft.Coupon)
	assert.Equal(t, "PHOTO100", view.Draft.Coupon.Code)
	assert.Equal(t, models.Money(100), view.Breakdown.Discount)
	assert.Equal(t, models.Money(1080), view.Breakdown.Total) // 1000 + 180 - 100

	var unknown *coupon.UnknownCouponError
	_, err = svc.ApplyCoupon(ctx, id, "BOGUS")
	require.ErrorAs(t, err, &unknown)

	view, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "PHOTO100", view.Draft.Coupon.Code)
}

func TestRemoveCouponIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	_, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "10:00 AM - 11:00 AM")
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, id, "PHOTO100")
	require.NoError(t, err)

	view, err = svc.RemoveCoupon(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.Draft.Coupon)
	assert.Equal(t, models.Money(0), view.Breakdown.Discount)

	// Removing again succeeds and stays at zero.
	view, err = svc.RemoveCoupon(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, view.Draft.Coupon)
	assert.Equal(t, models.Money(0), view.Breakdown.Discount)
}

func TestSetDetailsBoundsText(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	var tooLong *TextTooLongError
	_, err = svc.SetDetails(ctx, id, false, strings.Repeat("a", models.MaxSpecialRequestsLen+1))
	require.ErrorAs(t, err, &tooLong)

	view, err = svc.SetDetails(ctx, id, true, strings.Repeat("a", models.MaxSpecialRequestsLen))
	require.NoError(t, err)
	assert.True(t, view.Draft.RushDelivery)
	assert.Equal(t, models.Money(500), view.Breakdown.Fee, "rush fee once the flag is set")
}

func TestConfirmBooking(t *testing.T) {
	svc, bookings := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	// Not ready: nothing selected yet.
	_, err = svc.ConfirmBooking(ctx, id)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.SelectDate(ctx, id, "2026-09-20")
	require.NoError(t, err)

	// Still not ready: a date alone is not enough.
	_, err = svc.ConfirmBooking(ctx, id)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.ToggleSlot(ctx, id, "9:00 AM - 10:00 AM")
	require.NoError(t, err)
	_, err = svc.ToggleSlot(ctx, id, "10:00 AM - 11:00 AM")
	require.NoError(t, err)
	_, err = svc.SetAddonQuantity(ctx, id, 2, 1)
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, id, "PHOTO100")
	require.NoError(t, err)

	record, err := svc.ConfirmBooking(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", record.Status)
	assert.Equal(t, "2026-09-20", record.Date)
	assert.Equal(t, "PHOTO100", record.CouponCode)
	require.Len(t, record.Addons, 1)
	assert.Equal(t, models.Money(2000), record.Addons[0].LineTotal)
	assert.Equal(t, models.Money(3000), record.Breakdown.Subtotal)
	assert.Equal(t, models.Money(540), record.Breakdown.Tax)
	assert.Equal(t, models.Money(3440), record.Breakdown.Total)

	require.Len(t, bookings.inserted, 1)
	assert.Equal(t, record.ID, bookings.inserted[0].ID)

	// The session is gone once confirmed.
	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	view, err := svc.InitiateSession(ctx, "user-1", "ph-1", "")
	require.NoError(t, err)
	id := view.Draft.SessionID

	require.NoError(t, svc.CancelSession(ctx, id))
	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Unknown sessions fail consistently across operations.
	_, err = svc.SelectDate(ctx, "missing", "2026-09-20")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
