package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/spatial"
)

func TestBuildItinerary_Timeline(t *testing.T) {
	pref := models.DefaultPreferences()
	place := testPlace("x", models.BudgetComfortable, 0, 0)
	place.Coords = nil
	place.Name = "Bademiya"
	place.Area = "Colaba"

	itin := BuildItinerary(pref, place)

	assert.Equal(t, UnknownOneWayMinutes, itin.OneWayMins)
	assert.Equal(t, 207.0, itin.TotalOutMins)
	assert.Equal(t, models.ModeCab, itin.Mode)
	assert.Equal(t, 0.0, itin.TravelCostTotal)

	require.Len(t, itin.Timeline, 6)
	assert.Equal(t, []models.TimelineStep{
		{Time: "20:00", Label: "Leave home"},
		{Time: "21:00", Label: "Arrive: Colaba"},
		{Time: "21:00", Label: "Eat: Bademiya"},
		{Time: "22:15", Label: "Finish meal"},
		{Time: "22:27", Label: "Head back (buffer / settle)"},
		{Time: "23:27", Label: "Back to home"},
	}, itin.Timeline)
}

func TestBuildItinerary_TotalMatchesRoundTrip(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()
	pref.HomeLabel = "Kalwa"
	pref.TravelStyle = models.StyleCheap
	place := testPlace("x", models.BudgetCheap, 19.22, 73.00)

	itin := BuildItinerary(pref, place)

	assert.Equal(t, TotalRoundTripMinutes(pref, place), itin.TotalOutMins)
	assert.Equal(t, 2*itin.OneWayMins+75+12, itin.TotalOutMins)
	assert.Equal(t, models.ModeLocal, itin.Mode)
	assert.Equal(t, "Leave Kalwa", itin.Timeline[0].Label)
	assert.Equal(t, "Back to Kalwa", itin.Timeline[5].Label)
}

func TestBuildItinerary_TotalIsExactLateStart(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()
	pref.StartTime = "23:30"
	pref.BufferMins = 30
	place := testPlace("x", models.BudgetComfortable, 19.22, 73.00)

	itin := BuildItinerary(pref, place)

	assert.Equal(t, TotalRoundTripMinutes(pref, place), itin.TotalOutMins)
	assert.Equal(t, 2*itin.OneWayMins+75+30, itin.TotalOutMins)

	// eligibility and progress read the same total
	assert.Equal(t, Eligible(pref, place, place.FoodBudget), Progress(pref, itin).Within)
}

func TestBuildItinerary_PastMidnight(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.StartTime = "23:30"
	place := testPlace("x", models.BudgetComfortable, 0, 0)
	place.Coords = nil

	itin := BuildItinerary(pref, place)
	assert.Equal(t, "24:30", itin.Timeline[1].Time)
	assert.Equal(t, "26:57", itin.Timeline[5].Time)
}

func TestBuildItinerary_DinnerScenario(t *testing.T) {
	pref := models.DefaultPreferences()
	pref.Home = testHome()
	place := testPlace("x", models.BudgetComfortable, 19.22, 73.00)
	km := spatial.HaversineKm(pref.Home, place.Coords)

	itin := BuildItinerary(pref, place)

	oneWay := km / CabSpeedKmh * 60
	assert.InDelta(t, oneWay, itin.OneWayMins, 1e-9)
	assert.InDelta(t, 2*oneWay+87, itin.TotalOutMins, 1e-9)
	assert.InDelta(t, 2*(CabBaseFare+CabPerKm*km), itin.TravelCostTotal, 1e-9)
	assert.Equal(t, "20:00", itin.Timeline[0].Time)
	assert.Equal(t, FormatClock(1200+oneWay), itin.Timeline[1].Time)

	progress := Progress(pref, itin)
	assert.True(t, progress.HasLimit)
	assert.True(t, progress.Within)
	assert.Equal(t, 180, progress.LimitMinutes)
	assert.Less(t, progress.ProgressPct, 100)
}

func TestProgress(t *testing.T) {
	pref := models.DefaultPreferences()

	over := Progress(pref, models.Itinerary{TotalOutMins: 207})
	assert.False(t, over.Within)
	assert.Equal(t, 100, over.ProgressPct)

	half := Progress(pref, models.Itinerary{TotalOutMins: 90})
	assert.True(t, half.Within)
	assert.Equal(t, 50, half.ProgressPct)

	exact := Progress(pref, models.Itinerary{TotalOutMins: 180})
	assert.True(t, exact.Within)
	assert.Equal(t, 100, exact.ProgressPct)

	pref.MaxHours = 0
	none := Progress(pref, models.Itinerary{TotalOutMins: 900})
	assert.False(t, none.HasLimit)
	assert.True(t, none.Within)
}

func TestShareText(t *testing.T) {
	place := testPlace("x", models.BudgetCheap, 19.2, 72.97)
	place.Name = "Cafe Madras"
	place.Area = "Matunga"

	text := ShareText(CheapLabel, models.Itinerary{Place: place, TotalOutMins: 75})
	assert.Equal(t, "B) Cheap: Cafe Madras (Matunga) • Total time: 1h 15m • Google: "+
		"https://www.google.com/maps/search/?api=1&query=Cafe+Madras+Matunga", text)
}
