package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

// Constants
const (
	EarthRadiusKm = 6371.0 // Earth's mean radius in kilometers
)

// HaversineKm calculates the great-circle distance between two coordinates in kilometers.
// It returns 0 when either coordinate is unknown; callers must read that as "unknown",
// not "adjacent".
func HaversineKm(a, b *models.Coordinate) float64 {
	if a == nil || b == nil {
		return 0
	}
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// Valid reports whether c is a finite coordinate inside the WGS-84 range
func Valid(c models.Coordinate) bool {
	return isFinite(c.Lat) && isFinite(c.Lng) &&
		c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}
