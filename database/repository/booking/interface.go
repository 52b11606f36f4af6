// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"shutterbook/config"
	"shutterbook/database"
	"shutterbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed bookings and serves history queries.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
