// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"shutterbook/config"
	"shutterbook/database"
	"shutterbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository loads the fixed booking catalogs (slot grid, blackout
// dates, addons, coupons). The catalogs are configuration tables: the pure
// services receive them at startup and never reach back into storage.
type CatalogRepository interface {
	EnsureSeedData(ctx context.Context) error
	LoadTimeSlots(ctx context.Context) ([]models.TimeSlot, error)
	LoadBlackoutDates(ctx context.Context) ([]string, error)
	LoadAddons(ctx context.Context) ([]models.Addon, error)
	LoadCoupons(ctx context.Context) ([]models.Coupon, error)
}

type mongoCatalogRepo struct {
	slots     *mongo.Collection
	blackouts *mongo.Collection
	addons    *mongo.Collection
	coupons   *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		slots:     db.Collection("timeslots"),
		blackouts: db.Collection("blackout_dates"),
		addons:    db.Collection("addons"),
		coupons:   db.Collection("coupons"),
	}
}
