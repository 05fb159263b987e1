package planner

import (
	"sync"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/stats"
)

// Tier labels
const (
	UpscaleLabel = "A) Upscale"
	CheapLabel   = "B) Cheap"
)

// Plan ranks both budget tiers and builds an itinerary for the best place of each.
// The tiers share no state and are computed concurrently.
func Plan(pref models.Preferences, pool []models.Place) models.Plan {
	pref = pref.Clone()

	var (
		plan models.Plan
		wg   sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		plan.Upscale = PlanTier(pref, pool, models.BudgetComfortable, UpscaleLabel)
	}()
	go func() {
		defer wg.Done()
		plan.Cheap = PlanTier(pref, pool, models.BudgetCheap, CheapLabel)
	}()
	wg.Wait()

	return plan
}

// PlanTier ranks one tier and builds the itinerary for its top candidate
func PlanTier(pref models.Preferences, pool []models.Place, tier models.BudgetTier, label string) models.TierPlan {
	ranked := RankCandidates(pref, pool, tier)
	tp := models.TierPlan{
		Tier:    tier,
		Label:   label,
		Ranked:  ranked,
		Summary: summarize(pref, ranked),
	}
	if len(ranked) == 0 {
		return tp
	}

	itin := BuildItinerary(pref, ranked[0])
	progress := Progress(pref, itin)
	tp.Itinerary = &itin
	tp.Progress = &progress
	tp.ShareText = ShareText(label, itin)
	tp.SearchURL = places.SearchURL(itin.Place)
	tp.DirectionsURL = places.DirectionsURL(pref.Home, itin.Place)
	tp.CostLabel = FormatINR(itin.TravelCostTotal)
	return tp
}

func summarize(pref models.Preferences, ranked []models.Place) models.PoolSummary {
	if len(ranked) == 0 {
		return models.PoolSummary{}
	}

	oneWay := make([]float64, len(ranked))
	var ratings []float64
	for i, p := range ranked {
		oneWay[i] = EstimateTravel(pref.Home, p, pref.TravelStyle).OneWayMinutes
		if p.Rating != nil {
			ratings = append(ratings, *p.Rating)
		}
	}

	d := stats.Describe(oneWay)
	return models.PoolSummary{
		Count:        d.Count,
		MedianOneWay: d.Median,
		P90OneWay:    d.P90,
		MeanRating:   stats.Mean(ratings),
	}
}
