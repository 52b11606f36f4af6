// File: database/repository/photographer/interface.go
package photographerRepo

import (
	"context"

	"shutterbook/config"
	"shutterbook/database"
	"shutterbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PhotographerRepository exposes the photographer directory. Directory data is
// managed out of band; the booking API only reads it, plus the portfolio
// append used by the storage handler.
type PhotographerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Photographer, error)
	List(ctx context.Context, filter models.PhotographerFilter) ([]models.Photographer, error)
	AddPortfolioURL(ctx context.Context, id, url string) error
}

type mongoPhotographerRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotographerRepo constructs a new MongoDB PhotographerRepository.
func NewMongoPhotographerRepo() PhotographerRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPhotographerRepo{
		coll: db.Collection("photographers"),
	}
}
