package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shutterbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("booking repo: failed to insert booking %q: %w", booking.ID, err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("booking repo: failed to fetch %q: %w", id, err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID}, 0)
}

func (r *mongoBookingRepo) ListAll(ctx context.Context, limit int64) ([]models.Booking, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *mongoBookingRepo) list(ctx context.Context, query bson.M, limit int64) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("booking repo: failed to list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("booking repo: failed to decode bookings: %w", err)
	}
	return bookings, nil
}
