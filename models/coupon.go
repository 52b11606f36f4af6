package models

import "time"

// Coupon is a fixed ledger entry. Code is stored canonical upper-case;
// lookups normalize before matching.
type Coupon struct {
	Code           string     `bson:"code" json:"code"`
	DiscountValue  float64    `bson:"discount_value" json:"discountValue"` // flat amount, or percent when IsPercentage
	IsPercentage   bool       `bson:"is_percentage" json:"isPercentage"`
	MinOrderAmount Money      `bson:"min_order_amount" json:"minOrderAmount"`
	Description    string     `bson:"description,omitempty" json:"description,omitempty"`
	ExpiresAt      *time.Time `bson:"expires_at,omitempty" json:"expiresAt,omitempty"`
}

// AppliedCoupon is the coupon state carried on a booking draft. The discount
// is fixed at apply time against the subtotal that validated it.
type AppliedCoupon struct {
	Code     string `json:"code"`
	Discount Money  `json:"discount"`
}
