package models

import "time"

// Photographer is a directory entry for a bookable photographer.
type Photographer struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	City          string    `bson:"city" json:"city"`
	Specialty     string    `bson:"specialty" json:"specialty"` // e.g., "wedding", "portrait", "product"
	HourlyRate    Money     `bson:"hourly_rate" json:"hourlyRate"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PortfolioURLs []string  `bson:"portfolio_urls,omitempty" json:"portfolioUrls,omitempty"`
	Verified      bool      `bson:"verified" json:"verified"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// PhotographerFilter narrows directory listings.
type PhotographerFilter struct {
	City      string `form:"city"`
	Specialty string `form:"specialty"`
	MaxRate   Money  `form:"maxRate"`
}
