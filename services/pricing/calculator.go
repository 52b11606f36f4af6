// Package pricing computes the full price breakdown for a booking.
package pricing

import (
	"shutterbook/models"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"
)

// Pricing constants, in whole currency units.
const (
	TaxRate     = 0.18 // 18% GST on the subtotal
	RushFee     = models.Money(500)
	PlatformFee = models.Money(50)
)

// Compute builds the breakdown in fixed order so totals are bit-exact:
// base = rate*slots; subtotal = base+addons; tax = round(subtotal*0.18)
// half-up; fee per mode; total = max(0, subtotal+tax+fee-discount).
func Compute(hourlyRate models.Money, slotCount int, addonsTotal models.Money, feeMode models.FeeMode, rushDelivery bool, discount models.Money) models.PriceBreakdown {
	if !feeMode.Valid() {
		feeMode = models.FeeModeRush
	}

	basePrice := hourlyRate * models.Money(slotCount)
	subtotal := basePrice + addonsTotal
	tax := models.RoundHalfUp(float64(subtotal) * TaxRate)

	var fee models.Money
	switch feeMode {
	case models.FeeModePlatform:
		fee = PlatformFee
	default:
		if rushDelivery {
			fee = RushFee
		}
	}

	total := subtotal + tax + fee - discount
	if total < 0 {
		total = 0
	}

	return models.PriceBreakdown{
		BasePrice:   basePrice,
		AddonsTotal: addonsTotal,
		Subtotal:    subtotal,
		Tax:         tax,
		Fee:         fee,
		FeeMode:     feeMode,
		Discount:    discount,
		Total:       total,
	}
}

// Calculator resolves addon selections and coupon codes against the fixed
// catalogs before delegating to Compute.
type Calculator struct {
	Addons  *catalog.AddonCatalog
	Coupons *coupon.Ledger
}

// NewCalculator wires a Calculator over the given catalogs.
func NewCalculator(addons *catalog.AddonCatalog, coupons *coupon.Ledger) *Calculator {
	return &Calculator{Addons: addons, Coupons: coupons}
}

// Quote computes the full breakdown for a stateless quote request. An invalid
// addon selection or coupon fails the quote; no partial result is returned.
func (c *Calculator) Quote(input models.QuoteInput) (models.PriceBreakdown, error) {
	addonsTotal, err := c.Addons.Subtotal(input.Addons)
	if err != nil {
		return models.PriceBreakdown{}, err
	}

	var discount models.Money
	if input.CouponCode != "" {
		basePrice := input.HourlyRate * models.Money(input.SlotCount)
		applied, err := c.Coupons.Apply(input.CouponCode, basePrice+addonsTotal)
		if err != nil {
			return models.PriceBreakdown{}, err
		}
		discount = applied.Discount
	}

	return Compute(input.HourlyRate, input.SlotCount, addonsTotal, input.FeeMode, input.RushDelivery, discount), nil
}
