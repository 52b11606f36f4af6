// Package coupon validates and applies coupon codes from the fixed ledger.
package coupon

import (
	"fmt"
	"strings"
	"time"

	"shutterbook/models"
)

// UnknownCouponError reports a code absent from the ledger (or expired).
type UnknownCouponError struct {
	Code string
}

func (e *UnknownCouponError) Error() string {
	return fmt.Sprintf("coupon %q is not valid", e.Code)
}

// MinimumOrderNotMetError reports a subtotal below the coupon's threshold.
// Required carries the threshold so callers can render it.
type MinimumOrderNotMetError struct {
	Code     string
	Required models.Money
}

func (e *MinimumOrderNotMetError) Error() string {
	return fmt.Sprintf("coupon %q requires a minimum order of %d", e.Code, e.Required)
}

// Applied is the result of a successful coupon application.
type Applied struct {
	CanonicalCode string       `json:"code"`
	Discount      models.Money `json:"discount"`
}

// Ledger is the fixed coupon table, keyed by canonical upper-case code.
type Ledger struct {
	byCode map[string]models.Coupon
	now    func() time.Time
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock injects the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger builds a ledger over the given fixed coupon list.
func NewLedger(coupons []models.Coupon, opts ...Option) *Ledger {
	l := &Ledger{
		byCode: make(map[string]models.Coupon, len(coupons)),
		now:    time.Now,
	}
	for _, c := range coupons {
		l.byCode[strings.ToUpper(c.Code)] = c
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Apply validates code against subtotal and returns the discount with the
// canonical code. Lookup is case-insensitive; expired codes are treated as
// unknown. Percentage discounts round half-up to the nearest currency unit.
func (l *Ledger) Apply(code string, subtotal models.Money) (Applied, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	c, ok := l.byCode[canonical]
	if !ok {
		return Applied{}, &UnknownCouponError{Code: code}
	}
	if c.ExpiresAt != nil && l.now().After(*c.ExpiresAt) {
		return Applied{}, &UnknownCouponError{Code: code}
	}
	if subtotal < c.MinOrderAmount {
		return Applied{}, &MinimumOrderNotMetError{Code: canonical, Required: c.MinOrderAmount}
	}

	var discount models.Money
	if c.IsPercentage {
		discount = models.RoundHalfUp(float64(subtotal) * c.DiscountValue / 100)
	} else {
		discount = models.Money(c.DiscountValue)
	}
	return Applied{CanonicalCode: canonical, Discount: discount}, nil
}
