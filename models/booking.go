package models

import "time"

// MaxSpecialRequestsLen bounds the free-text special requests field.
const MaxSpecialRequestsLen = 500

// BookingDraft is the mutable, session-scoped aggregate built up during the
// booking flow. One draft belongs to exactly one session; it lives in the
// session cache until confirmed or cancelled.
type BookingDraft struct {
	SessionID       string         `json:"sessionId"`
	UserID          string         `json:"userId"`
	PhotographerID  string         `json:"photographerId"`
	HourlyRate      Money          `json:"hourlyRate"`
	FeeMode         FeeMode        `json:"feeMode"`
	Date            string         `json:"date,omitempty"` // "YYYY-MM-DD", empty until selected
	Slots           []string       `json:"slots,omitempty"`
	Addons          AddonSelection `json:"addons,omitempty"`
	Coupon          *AppliedCoupon `json:"coupon,omitempty"`
	RushDelivery    bool           `json:"rushDelivery"`
	SpecialRequests string         `json:"specialRequests,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// HasSlot reports whether the canonical slot label is selected.
func (d *BookingDraft) HasSlot(label string) bool {
	for _, s := range d.Slots {
		if s == label {
			return true
		}
	}
	return false
}

// ReadyForCheckout is the derived confirm-enabled predicate: a date is
// selected and at least one slot is held.
func (d *BookingDraft) ReadyForCheckout() bool {
	return d.Date != "" && len(d.Slots) > 0
}

// DraftView is a draft together with its live price breakdown.
type DraftView struct {
	Draft     BookingDraft   `json:"draft"`
	Breakdown PriceBreakdown `json:"breakdown"`
	Ready     bool           `json:"readyForCheckout"`
}

// Booking is a confirmed booking record persisted at checkout.
type Booking struct {
	ID              string         `bson:"id" json:"id"`
	PhotographerID  string         `bson:"photographer_id" json:"photographerId"`
	UserID          string         `bson:"user_id" json:"userId"`
	Date            string         `bson:"date" json:"date"`
	Slots           []string       `bson:"slots" json:"slots"`
	Addons          []AddonLine    `bson:"addons,omitempty" json:"addons,omitempty"`
	CouponCode      string         `bson:"coupon_code,omitempty" json:"couponCode,omitempty"`
	RushDelivery    bool           `bson:"rush_delivery" json:"rushDelivery"`
	SpecialRequests string         `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	Breakdown       PriceBreakdown `bson:"breakdown" json:"breakdown"`
	Status          string         `bson:"status" json:"status"` // e.g., "confirmed"
	CreatedAt       time.Time      `bson:"created_at" json:"createdAt"`
}
