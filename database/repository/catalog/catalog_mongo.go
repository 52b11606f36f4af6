package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"shutterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// blackoutDoc is the stored shape of one blacked-out calendar date.
type blackoutDoc struct {
	Date   string `bson:"date"` // "YYYY-MM-DD"
	Reason string `bson:"reason,omitempty"`
}

func (r *mongoCatalogRepo) LoadTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// The grid is stored in display order; "order" preserves it across reads.
	cur, err := r.slots.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("catalog repo: failed to load timeslots: %w", err)
	}
	defer cur.Close(ctx)

	var slots []models.TimeSlot
	if err := cur.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("catalog repo: failed to decode timeslots: %w", err)
	}
	return slots, nil
}

func (r *mongoCatalogRepo) LoadBlackoutDates(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.blackouts.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog repo: failed to load blackout dates: %w", err)
	}
	defer cur.Close(ctx)

	var docs []blackoutDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("catalog repo: failed to decode blackout dates: %w", err)
	}
	dates := make([]string, 0, len(docs))
	for _, d := range docs {
		dates = append(dates, d.Date)
	}
	return dates, nil
}

func (r *mongoCatalogRepo) LoadAddons(ctx context.Context) ([]models.Addon, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.addons.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("catalog repo: failed to load addons: %w", err)
	}
	defer cur.Close(ctx)

	var addons []models.Addon
	if err := cur.All(ctx, &addons); err != nil {
		return nil, fmt.Errorf("catalog repo: failed to decode addons: %w", err)
	}
	return addons, nil
}

func (r *mongoCatalogRepo) LoadCoupons(ctx context.Context) ([]models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.coupons.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog repo: failed to load coupons: %w", err)
	}
	defer cur.Close(ctx)

	var coupons []models.Coupon
	if err := cur.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("catalog repo: failed to decode coupons: %w", err)
	}
	return coupons, nil
}

// seedCollection inserts docs when the collection is empty.
func seedCollection(ctx context.Context, coll *mongo.Collection, docs []interface{}) error {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}
