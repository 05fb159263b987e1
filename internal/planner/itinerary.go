package planner

import (
	"fmt"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
)

const defaultHomeLabel = "home"

// BuildItinerary lays out the outing to place on a timeline starting at pref.StartTime
func BuildItinerary(pref models.Preferences, place models.Place) models.Itinerary {
	stats := EstimateTravel(pref.Home, place, pref.TravelStyle)
	oneWay := stats.OneWayMinutes

	leave := float64(ParseClock(pref.StartTime))
	arrive := leave + oneWay
	mealStart := arrive
	mealEnd := mealStart + float64(place.AvgMealMins)
	departBack := mealEnd + float64(pref.BufferMins)
	home := departBack + oneWay

	homeLabel := pref.HomeLabel
	if homeLabel == "" {
		homeLabel = defaultHomeLabel
	}

	return models.Itinerary{
		Place:           place,
		Mode:            ModeFor(pref.TravelStyle),
		OneWayMins:      oneWay,
		TotalOutMins:    2*oneWay + float64(place.AvgMealMins) + float64(pref.BufferMins),
		TravelCostTotal: stats.OneWayCost * 2,
		Timeline: []models.TimelineStep{
			{Time: FormatClock(leave), Label: "Leave " + homeLabel},
			{Time: FormatClock(arrive), Label: "Arrive: " + place.Area},
			{Time: FormatClock(mealStart), Label: "Eat: " + place.Name},
			{Time: FormatClock(mealEnd), Label: "Finish meal"},
			{Time: FormatClock(departBack), Label: "Head back (buffer / settle)"},
			{Time: FormatClock(home), Label: "Back to " + homeLabel},
		},
	}
}

// Progress reports how the itinerary fits the preference's time limit
func Progress(pref models.Preferences, itin models.Itinerary) models.LimitProgress {
	if !HasTimeLimit(pref.MaxHours) {
		return models.LimitProgress{Within: true}
	}
	limit := TimeLimitMinutes(pref.MaxHours)
	pct := int(itin.TotalOutMins/float64(limit)*100 + 0.5)
	if pct > 100 {
		pct = 100
	}
	return models.LimitProgress{
		HasLimit:     true,
		LimitMinutes: limit,
		Within:       itin.TotalOutMins <= float64(limit),
		ProgressPct:  pct,
	}
}

// ShareText is the one-line summary used when sharing an itinerary
func ShareText(label string, itin models.Itinerary) string {
	return fmt.Sprintf("%s: %s (%s) • Total time: %s • Google: %s",
		label, itin.Place.Name, itin.Place.Area, FormatDuration(itin.TotalOutMins), places.SearchURL(itin.Place))
}
