package places

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

const mapsBase = "https://www.google.com/maps"

// SearchURL links to the place on Google Maps, by place id when known
func SearchURL(p models.Place) string {
	if p.PlaceID != "" {
		name := p.Name
		if name == "" {
			name = "restaurant"
		}
		return fmt.Sprintf("%s/search/?api=1&query_place_id=%s&query=%s",
			mapsBase, url.QueryEscape(p.PlaceID), url.QueryEscape(name))
	}

	q := strings.TrimSpace(p.Name + " " + p.Area)
	if q == "" {
		q = "restaurant"
	}
	return fmt.Sprintf("%s/search/?api=1&query=%s", mapsBase, url.QueryEscape(q))
}

// DirectionsURL links to directions from home (when known) to the place.
// It returns "#" when the place has no coordinates.
func DirectionsURL(home *models.Coordinate, p models.Place) string {
	if p.Coords == nil {
		return "#"
	}
	dest := fmt.Sprintf("%v,%v", p.Coords.Lat, p.Coords.Lng)
	if home != nil {
		origin := fmt.Sprintf("%v,%v", home.Lat, home.Lng)
		return fmt.Sprintf("%s/dir/?api=1&origin=%s&destination=%s",
			mapsBase, url.QueryEscape(origin), url.QueryEscape(dest))
	}
	return fmt.Sprintf("%s/dir/?api=1&destination=%s", mapsBase, url.QueryEscape(dest))
}
