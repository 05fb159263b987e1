package planner

import (
	"math"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/spatial"
)

// Travel model parameters
const (
	MinTripKm        = 0.5 // shortest distance a trip is priced at
	MinOneWayMinutes = 5.0

	CabSpeedKmh = 15.0 // effective urban speed including wait and boarding
	CabBaseFare = 70.0
	CabPerKm    = 22.0

	LocalSpeedKmh    = 10.0
	LocalOverheadMin = 10.0 // wait and transfer time
	LocalBaseFare    = 20.0
	LocalPerKm       = 4.0

	UnknownOneWayMinutes = 60.0
)

// ModeFor maps a travel style onto the mode used for estimates
func ModeFor(style models.TravelStyle) models.TravelMode {
	if style == models.StyleComfortable {
		return models.ModeCab
	}
	return models.ModeLocal
}

// EstimateTravel returns one-way time and cost from home to the place.
// Unknown geometry on either side yields a flat 60 minute, zero cost estimate.
func EstimateTravel(home *models.Coordinate, place models.Place, style models.TravelStyle) models.TravelStats {
	if home == nil || place.Coords == nil {
		return models.TravelStats{OneWayMinutes: UnknownOneWayMinutes, OneWayCost: 0}
	}

	km := math.Max(spatial.HaversineKm(home, place.Coords), MinTripKm)

	var minutes, cost float64
	if ModeFor(style) == models.ModeCab {
		minutes = km / CabSpeedKmh * 60
		cost = CabBaseFare + CabPerKm*km
	} else {
		minutes = km/LocalSpeedKmh*60 + LocalOverheadMin
		cost = LocalBaseFare + LocalPerKm*km
	}

	return models.TravelStats{
		OneWayMinutes: math.Max(MinOneWayMinutes, minutes),
		OneWayCost:    math.Max(0, cost),
	}
}
