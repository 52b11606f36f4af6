package photographerRepo

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

// ErrNotFound is returned when no photographer matches the given id.
var ErrNotFound = errors.New("photographer not found")

func (r *mongoPhotographerRepo) GetByID(ctx context.Context, id string) (*models.Photographer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Photographer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("photographer repo: failed to fetch %q: %w", id, err)
	}
	return &p, nil
}

func (r *mongoPhotographerRepo) List(ctx context.Context, filter models.PhotographerFilter) ([]models.Photographer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Specialty != "" {
		query["specialty"] = filter.Specialty
	}
	if filter.MaxRate > 0 {
		query["hourly_rate"] = bson.M{"$lte": filter.MaxRate}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("photographer repo: failed to list: %w", err)
	}
	defer cur.Close(ctx)

	var results []models.Photographer
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("photographer repo: failed to decode list: %w", err)
	}
	return results, nil
}

func (r *mongoPhotographerRepo) AddPortfolioURL(ctx context.Context, id, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$addToSet": bson.M{"portfolio_urls": url}},
	)
	if err != nil {
		return fmt.Errorf("photographer repo: failed to add portfolio url: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
