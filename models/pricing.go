package models

// FeeMode names the two mutually exclusive checkout fee variants.
// Rush mode charges a fixed rush-delivery fee only when the rush flag is set;
// platform mode charges a flat platform fee and ignores the rush flag.
type FeeMode string

const (
	FeeModeRush     FeeMode = "rush"
	FeeModePlatform FeeMode = "platform"
)

// Valid reports whether m is one of the named fee modes.
func (m FeeMode) Valid() bool {
	return m == FeeModeRush || m == FeeModePlatform
}

// QuoteInput carries everything needed for a stateless price computation.
type QuoteInput struct {
	HourlyRate   Money          `json:"hourlyRate" binding:"min=0"`
	SlotCount    int            `json:"slotCount" binding:"min=0"`
	Addons       AddonSelection `json:"addons,omitempty"`
	RushDelivery bool           `json:"rushDelivery"`
	FeeMode      FeeMode        `json:"feeMode,omitempty"`
	CouponCode   string         `json:"couponCode,omitempty"`
}

// PriceBreakdown exposes every line of a computed price so callers can render
// or assert each independently. Total is never negative.
type PriceBreakdown struct {
	BasePrice   Money   `bson:"base_price" json:"basePrice"`
	AddonsTotal Money   `bson:"addons_total" json:"addonsTotal"`
	Subtotal    Money   `bson:"subtotal" json:"subtotal"`
	Tax         Money   `bson:"tax" json:"tax"`
	Fee         Money   `bson:"fee" json:"fee"`
	FeeMode     FeeMode `bson:"fee_mode" json:"feeMode"`
	Discount    Money   `bson:"discount" json:"discount"`
	Total       Money   `bson:"total" json:"total"`
}
