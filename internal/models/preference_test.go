package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesClone(t *testing.T) {
	orig := DefaultPreferences()
	orig.Home = &Coordinate{Lat: 19.2, Lng: 72.97}
	orig.Cuisines = []string{"Cafe"}

	c := orig.Clone()
	c.Home.Lat = 0
	c.Cuisines[0] = "Pizza"

	assert.Equal(t, 19.2, orig.Home.Lat)
	assert.Equal(t, "Cafe", orig.Cuisines[0])
}

func TestPreferencesNormalized(t *testing.T) {
	p := Preferences{
		Outing:      "brunch",
		TravelStyle: "luxury",
		BufferMins:  45,
		MaxHours:    math.NaN(),
		RadiusKm:    50,
	}
	n := p.Normalized()

	assert.Equal(t, OutingDinner, n.Outing)
	assert.Equal(t, StyleComfortable, n.TravelStyle)
	assert.Equal(t, MaxBufferMins, n.BufferMins)
	assert.Equal(t, 3.0, n.MaxHours)
	assert.Equal(t, MaxRadiusKm, n.RadiusKm)

	low := Preferences{Outing: OutingSnack, TravelStyle: StyleCheap, BufferMins: -1, MaxHours: -2, RadiusKm: 0.1}.Normalized()
	assert.Equal(t, OutingSnack, low.Outing)
	assert.Equal(t, StyleCheap, low.TravelStyle)
	assert.Equal(t, 0, low.BufferMins)
	assert.Equal(t, 0.0, low.MaxHours)
	assert.Equal(t, MinRadiusKm, low.RadiusKm)
}

func TestOutingTemplates(t *testing.T) {
	assert.Equal(t, []OutingKey{OutingBreakfast, OutingLunch, OutingSnack, OutingDinner}, AllOutings())

	tpl, ok := TemplateFor(OutingSnack)
	assert.True(t, ok)
	assert.Equal(t, "17:30", tpl.DefaultStart)

	_, ok = TemplateFor("brunch")
	assert.False(t, ok)
}

func TestPlaceHelpers(t *testing.T) {
	r := 4.2
	p := Place{Rating: &r, BestFor: []OutingKey{OutingLunch}}
	assert.Equal(t, 4.2, p.RatingOrZero())
	assert.True(t, p.SuitableFor(OutingLunch))
	assert.False(t, p.SuitableFor(OutingDinner))
	assert.Equal(t, 0.0, Place{}.RatingOrZero())

	assert.True(t, BudgetCheap.Valid())
	assert.False(t, BudgetTier("luxury").Valid())
}
