package models

import "math"

// Money is an amount in whole currency units (INR rupees).
// All pricing arithmetic is exact; rounding happens only where a
// percentage is taken (tax, percentage coupons), half-up.
type Money int64

// RoundHalfUp rounds a non-negative amount to the nearest whole currency unit,
// halves rounding up.
func RoundHalfUp(x float64) Money {
	return Money(math.Floor(x + 0.5))
}
