package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/spatial"
)

// Score weights
const (
	bestForBonus      = 6.0
	withinLimitBonus  = 12.0
	overLimitPenalty  = -100.0
	noLimitBonus      = 6.0
	proximityCeiling  = 18.0
	breakfastBarMalus = -12.0
	snackCafeBonus    = 6.0
	dinnerRatingCap   = 6.0
)

// TimeLimitMinutes converts the max-hours preference to minutes; 0 means no limit
func TimeLimitMinutes(maxHours float64) int {
	return int(math.Round(spatial.Clamp(maxHours, 0, models.MaxHours) * 60))
}

// HasTimeLimit reports whether maxHours sets a limit
func HasTimeLimit(maxHours float64) bool {
	return TimeLimitMinutes(maxHours) > 0
}

// TotalRoundTripMinutes is the time spent out: both legs, the meal and the buffer
func TotalRoundTripMinutes(pref models.Preferences, place models.Place) float64 {
	stats := EstimateTravel(pref.Home, place, pref.TravelStyle)
	return 2*stats.OneWayMinutes + float64(place.AvgMealMins) + float64(pref.BufferMins)
}

// Score ranks a single place for the preferences. It does not filter, so a place
// over the time limit is still scored (with a heavy penalty).
func Score(pref models.Preferences, place models.Place) float64 {
	s := 0.0
	if place.SuitableFor(pref.Outing) {
		s += bestForBonus
	}

	if HasTimeLimit(pref.MaxHours) {
		if TotalRoundTripMinutes(pref, place) > float64(TimeLimitMinutes(pref.MaxHours)) {
			s += overLimitPenalty
		} else {
			s += withinLimitBonus
		}
	} else {
		s += noLimitBonus
	}

	oneWay := EstimateTravel(pref.Home, place, pref.TravelStyle).OneWayMinutes
	s += math.Max(0, proximityCeiling-math.Round(oneWay/5))

	tags := classifyTypes(place.Types)
	switch pref.Outing {
	case models.OutingBreakfast:
		if tags.bar {
			s += breakfastBarMalus
		}
	case models.OutingSnack:
		if tags.cafe || tags.street {
			s += snackCafeBonus
		}
	case models.OutingDinner:
		s += math.Min(dinnerRatingCap, place.RatingOrZero())
	}
	return s
}

type typeTags struct {
	bar, cafe, street bool
}

func classifyTypes(types []string) typeTags {
	var tags typeTags
	for _, raw := range types {
		t := strings.ToLower(raw)
		if strings.Contains(t, "bar") || strings.Contains(t, "night_club") {
			tags.bar = true
		}
		if strings.Contains(t, "cafe") {
			tags.cafe = true
		}
		if strings.Contains(t, "meal_takeaway") || strings.Contains(t, "street") {
			tags.street = true
		}
	}
	return tags
}

// Eligible reports whether a place passes the tier, cuisine and time-limit filters
func Eligible(pref models.Preferences, place models.Place, tier models.BudgetTier) bool {
	if place.FoodBudget != tier {
		return false
	}
	if len(pref.Cuisines) > 0 && !pref.HasCuisine(place.Cuisine) {
		return false
	}
	if HasTimeLimit(pref.MaxHours) {
		return TotalRoundTripMinutes(pref, place) <= float64(TimeLimitMinutes(pref.MaxHours))
	}
	return true
}

// ScoredPlace pairs a place with its score
type ScoredPlace struct {
	Place models.Place `json:"place"`
	Score float64      `json:"score"`
}

// ScoreAll scores every place without filtering, best first; ties keep input order
func ScoreAll(pref models.Preferences, places []models.Place) []ScoredPlace {
	pref = pref.Clone()
	scored := make([]ScoredPlace, len(places))
	for i, p := range places {
		scored[i] = ScoredPlace{Place: p, Score: Score(pref, p)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// RankCandidates filters places for the tier and returns them best first.
// The sort is stable, so equal scores keep their input order.
func RankCandidates(pref models.Preferences, places []models.Place, tier models.BudgetTier) []models.Place {
	pref = pref.Clone()

	pool := make([]models.Place, 0, len(places))
	for _, p := range places {
		if Eligible(pref, p, tier) {
			pool = append(pool, p)
		}
	}

	scored := ScoreAll(pref, pool)
	ranked := make([]models.Place, len(scored))
	for i, sp := range scored {
		ranked[i] = sp.Place
	}
	return ranked
}
