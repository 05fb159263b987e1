package places

import "github.com/jengzang/food-itinerary-go/internal/models"

// RawPlace is a search result as handed over by the places lookup.
// Every field is optional; Normalize fills the gaps.
type RawPlace struct {
	ID               string             `json:"id,omitempty"`
	PlaceID          string             `json:"placeId,omitempty"`
	Name             string             `json:"name,omitempty"`
	Area             string             `json:"area,omitempty"`
	Vicinity         string             `json:"vicinity,omitempty"`
	Coords           *models.Coordinate `json:"coords,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	UserRatingsTotal *int               `json:"userRatingsTotal,omitempty"`
	PriceLevel       *int               `json:"priceLevel,omitempty"`
	Types            []string           `json:"types,omitempty"`
	BusinessStatus   string             `json:"businessStatus,omitempty"`
	OpeningHours     *OpeningHours      `json:"openingHours,omitempty"`
}

// OpeningHours carries the open-now flag when the upstream knows it
type OpeningHours struct {
	OpenNow *bool `json:"openNow,omitempty"`
}
