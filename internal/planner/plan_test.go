package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

func TestPlan_BothTiers(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()

	upscale := testPlace("u", models.BudgetComfortable, 19.22, 73.00)
	upscale.Rating = ratingOf(4.6)
	cheap := testPlace("c", models.BudgetCheap, 19.21, 72.98)
	cheap.Rating = ratingOf(4.0)
	cheap2 := testPlace("c2", models.BudgetCheap, 19.25, 73.02)

	plan := Plan(pref, []models.Place{upscale, cheap, cheap2})

	require.NotNil(t, plan.Upscale.Itinerary)
	assert.Equal(t, "u", plan.Upscale.Itinerary.Place.ID)
	assert.Equal(t, UpscaleLabel, plan.Upscale.Label)
	assert.Equal(t, models.BudgetComfortable, plan.Upscale.Tier)
	assert.True(t, strings.HasPrefix(plan.Upscale.ShareText, UpscaleLabel+": "))

	require.NotNil(t, plan.Cheap.Itinerary)
	assert.Equal(t, "c", plan.Cheap.Itinerary.Place.ID)
	assert.Len(t, plan.Cheap.Ranked, 2)
	require.NotNil(t, plan.Cheap.Progress)
	assert.True(t, plan.Cheap.Progress.Within)

	assert.Equal(t, 2, plan.Cheap.Summary.Count)
	assert.InDelta(t, 4.0, plan.Cheap.Summary.MeanRating, 1e-9)
	assert.LessOrEqual(t, plan.Cheap.Summary.MedianOneWay, plan.Cheap.Summary.P90OneWay)
}

func TestPlan_EmptyTier(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()

	plan := Plan(pref, []models.Place{testPlace("c", models.BudgetCheap, 19.21, 72.98)})

	assert.Nil(t, plan.Upscale.Itinerary)
	assert.Nil(t, plan.Upscale.Progress)
	assert.Empty(t, plan.Upscale.Ranked)
	assert.Empty(t, plan.Upscale.ShareText)
	assert.Equal(t, models.PoolSummary{}, plan.Upscale.Summary)
	assert.NotNil(t, plan.Cheap.Itinerary)
}

func TestPlan_NoPlaces(t *testing.T) {
	plan := Plan(models.DefaultPreferences(), nil)
	assert.Nil(t, plan.Upscale.Itinerary)
	assert.Nil(t, plan.Cheap.Itinerary)
}

func TestPlan_EveryTierWithinLimit(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()
	pref.MaxHours = 2

	var input []models.Place
	for i, lat := range []float64{19.21, 19.30, 19.45, 19.80} {
		tier := models.BudgetCheap
		if i%2 == 0 {
			tier = models.BudgetComfortable
		}
		input = append(input, testPlace(string(rune('a'+i)), tier, lat, 72.97))
	}

	plan := Plan(pref, input)
	for _, tp := range []models.TierPlan{plan.Upscale, plan.Cheap} {
		for _, p := range tp.Ranked {
			assert.LessOrEqual(t, TotalRoundTripMinutes(pref, p), 120.0)
			assert.Equal(t, tp.Tier, p.FoodBudget)
		}
	}
}

func TestPlanTier_Links(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()
	place := testPlace("c", models.BudgetCheap, 19.21, 72.98)

	tp := PlanTier(pref, []models.Place{place}, models.BudgetCheap, CheapLabel)
	require.NotNil(t, tp.Itinerary)
	assert.Contains(t, tp.SearchURL, "/maps/search/")
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&origin=19.2%2C72.97&destination=19.21%2C72.98", tp.DirectionsURL)
	assert.Equal(t, FormatINR(tp.Itinerary.TravelCostTotal), tp.CostLabel)
}
