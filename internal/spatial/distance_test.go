package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

func TestHaversineKm_Identity(t *testing.T) {
	points := []models.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 19.2, Lng: 72.97},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 89.9, Lng: -179.9},
	}
	for _, p := range points {
		p := p
		assert.Equal(t, 0.0, HaversineKm(&p, &p))
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	pairs := [][2]models.Coordinate{
		{{Lat: 19.20, Lng: 72.97}, {Lat: 19.22, Lng: 73.00}},
		{{Lat: 28.6139, Lng: 77.2090}, {Lat: 12.9716, Lng: 77.5946}},
		{{Lat: 51.5, Lng: -0.12}, {Lat: 40.71, Lng: -74.0}},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.InDelta(t, HaversineKm(&a, &b), HaversineKm(&b, &a), 1e-9)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	home := models.Coordinate{Lat: 19.20, Lng: 72.97}
	place := models.Coordinate{Lat: 19.22, Lng: 73.00}
	assert.InDelta(t, 3.8, HaversineKm(&home, &place), 0.3)

	// One degree of latitude is ~111.19 km on a 6371 km sphere
	a := models.Coordinate{Lat: 0, Lng: 0}
	b := models.Coordinate{Lat: 1, Lng: 0}
	assert.InDelta(t, 111.19, HaversineKm(&a, &b), 0.01)
}

func TestHaversineKm_UnknownSide(t *testing.T) {
	a := models.Coordinate{Lat: 10, Lng: 10}
	assert.Equal(t, 0.0, HaversineKm(nil, &a))
	assert.Equal(t, 0.0, HaversineKm(&a, nil))
	assert.Equal(t, 0.0, HaversineKm(nil, nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-3, 1, 20))
	assert.Equal(t, 20.0, Clamp(25, 1, 20))
	assert.Equal(t, 7.5, Clamp(7.5, 1, 20))
	assert.Equal(t, 0, ClampInt(-1, 0, 59))
	assert.Equal(t, 23, ClampInt(99, 0, 23))
	assert.Equal(t, 5, ClampInt(5, 0, 23))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(models.Coordinate{Lat: 19.2, Lng: 72.97}))
	assert.False(t, Valid(models.Coordinate{Lat: math.NaN(), Lng: 0}))
	assert.False(t, Valid(models.Coordinate{Lat: 0, Lng: math.Inf(1)}))
	assert.False(t, Valid(models.Coordinate{Lat: 91, Lng: 0}))
	assert.False(t, Valid(models.Coordinate{Lat: 0, Lng: -181}))
}
