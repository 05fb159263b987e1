package models

import "time"

// Coordinate is a WGS-84 point. A nil *Coordinate means the location is unknown.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a candidate venue after normalization
type Place struct {
	ID      string `json:"id"`                 // Stable across normalizations of the same raw record
	PlaceID string `json:"place_id,omitempty"` // Upstream place id, empty for ad-hoc places
	Name    string `json:"name"`
	Area    string `json:"area"`

	Coords           *Coordinate `json:"coords,omitempty"`
	Rating           *float64    `json:"rating,omitempty"` // 0-5
	UserRatingsTotal *int        `json:"user_ratings_total,omitempty"`

	// Pricing
	PriceLevel *int       `json:"price_level,omitempty"` // 0-4 as reported upstream
	PriceTag   string     `json:"price_tag"`             // ₹, ₹₹ or ₹₹₹
	FoodBudget BudgetTier `json:"food_budget"`

	// Classification
	Cuisine        string   `json:"cuisine"`
	Types          []string `json:"types"`
	OpenNow        *bool    `json:"open_now,omitempty"`
	BusinessStatus string   `json:"business_status,omitempty"`

	AvgMealMins int         `json:"avg_meal_mins"`
	BestFor     []OutingKey `json:"best_for"`
}

// SuitableFor reports whether the place lists the outing in BestFor
func (p Place) SuitableFor(key OutingKey) bool {
	for _, k := range p.BestFor {
		if k == key {
			return true
		}
	}
	return false
}

// RatingOrZero returns the rating, treating an absent rating as 0
func (p Place) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// BudgetTier is the binary price classification of a place
type BudgetTier string

// BudgetTier constants
const (
	BudgetCheap       BudgetTier = "cheap"
	BudgetComfortable BudgetTier = "comfortable"
)

// Valid reports whether the tier is one of the known values
func (b BudgetTier) Valid() bool {
	return b == BudgetCheap || b == BudgetComfortable
}

// CachedPlaces is a stored places lookup result
type CachedPlaces struct {
	Key       string    `json:"key" db:"cache_key"`
	Places    []Place   `json:"places"`
	FetchedAt time.Time `json:"fetched_at" db:"fetched_at"`
}

// Favorite is a place saved by a session
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	Owner     string    `json:"-" db:"owner"`
	PlaceID   string    `json:"place_id" db:"place_id"`
	Name      string    `json:"name" db:"name"`
	Area      string    `json:"area,omitempty" db:"area"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
