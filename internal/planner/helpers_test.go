package planner

import (
	"github.com/jengzang/food-itinerary-go/internal/models"
)

func testHome() *models.Coordinate {
	return &models.Coordinate{Lat: 19.20, Lng: 72.97}
}

func testPlace(id string, tier models.BudgetTier, lat, lng float64) models.Place {
	return models.Place{
		ID:          id,
		Name:        "Place " + id,
		Area:        "Area " + id,
		Coords:      &models.Coordinate{Lat: lat, Lng: lng},
		FoodBudget:  tier,
		Cuisine:     "Restaurant",
		Types:       []string{"restaurant"},
		AvgMealMins: 75,
		BestFor:     models.AllOutings(),
	}
}

func ratingOf(r float64) *float64 {
	return &r
}
