package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"shutterbook/models"
)

// slotDoc is the stored shape of one grid slot, carrying its display order.
type slotDoc struct {
	Start string `bson:"start"`
	End   string `bson:"end"`
	Order int    `bson:"order"`
}

// slotGridLabels is the fixed hourly grid, 9:00 AM through 9:00 PM.
var slotGridLabels = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	"5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM", "9:00 PM",
}

func seedSlots() []interface{} {
	docs := make([]interface{}, 0, len(slotGridLabels)-1)
	for i := 0; i+1 < len(slotGridLabels); i++ {
		docs = append(docs, slotDoc{Start: slotGridLabels[i], End: slotGridLabels[i+1], Order: i})
	}
	return docs
}

func seedBlackouts() []interface{} {
	return []interface{}{
		blackoutDoc{Date: "2026-10-02", Reason: "national holiday"},
		blackoutDoc{Date: "2026-11-14", Reason: "studio maintenance"},
		blackoutDoc{Date: "2026-12-25", Reason: "national holiday"},
		blackoutDoc{Date: "2027-01-01", Reason: "national holiday"},
	}
}

func seedAddons() []interface{} {
	return []interface{}{
		models.Addon{ID: 1, Name: "Premium Photo Album", UnitPrice: 1500, Description: "Handcrafted 40-page printed album"},
		models.Addon{ID: 2, Name: "Drone Coverage", UnitPrice: 2000, Description: "Aerial shots by a licensed drone operator"},
		models.Addon{ID: 3, Name: "Extra Edited Photos", UnitPrice: 800, Description: "Pack of 25 additional retouched photos"},
		models.Addon{ID: 4, Name: "Same-Day Highlights", UnitPrice: 1200, Description: "Curated highlight set delivered same day"},
		models.Addon{ID: 5, Name: "Second Photographer", UnitPrice: 2500, Description: "Additional photographer for full coverage"},
	}
}

func seedCoupons() []interface{} {
	firstShootExpiry := time.Date(2027, 6, 30, 23, 59, 59, 0, time.UTC)
	return []interface{}{
		models.Coupon{Code: "PHOTO100", DiscountValue: 100, MinOrderAmount: 1000, Description: "Flat 100 off orders of 1000+"},
		models.Coupon{Code: "SAVE200", DiscountValue: 200, MinOrderAmount: 2000, Description: "Flat 200 off orders of 2000+"},
		models.Coupon{Code: "WEEKEND15", DiscountValue: 15, IsPercentage: true, MinOrderAmount: 0, Description: "15% off, no minimum"},
		models.Coupon{Code: "FIRSTSHOOT", DiscountValue: 250, MinOrderAmount: 1500, Description: "Flat 250 off your first shoot", ExpiresAt: &firstShootExpiry},
	}
}

// EnsureSeedData populates empty catalog collections with the default fixture
// tables so a fresh deployment serves a working catalog immediately.
func (r *mongoCatalogRepo) EnsureSeedData(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := seedCollection(ctx, r.slots, seedSlots()); err != nil {
		return fmt.Errorf("catalog repo: failed to seed timeslots: %w", err)
	}
	if err := seedCollection(ctx, r.blackouts, seedBlackouts()); err != nil {
		return fmt.Errorf("catalog repo: failed to seed blackout dates: %w", err)
	}
	if err := seedCollection(ctx, r.addons, seedAddons()); err != nil {
		return fmt.Errorf("catalog repo: failed to seed addons: %w", err)
	}
	if err := seedCollection(ctx, r.coupons, seedCoupons()); err != nil {
		return fmt.Errorf("catalog repo: failed to seed coupons: %w", err)
	}
	return nil
}
