package places

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	maps "googlemaps.github.io/maps"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

// GeocodeResult is a resolved home location
type GeocodeResult struct {
	Label   string            `json:"label"`
	Coords  models.Coordinate `json:"coords"`
	PlaceID string            `json:"place_id,omitempty"`
}

// Geocoder resolves addresses and coordinates through the Google Geocoding API
type Geocoder struct {
	client *maps.Client
	logger arbor.ILogger
}

// NewGeocoder creates a geocoder. Without an API key it is still usable but
// every call fails with ErrMissingCredential.
func NewGeocoder(apiKey, baseURL string, timeout time.Duration, logger arbor.ILogger) (*Geocoder, error) {
	g := &Geocoder{logger: logger}
	if apiKey == "" {
		return g, nil
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" && baseURL != DefaultBaseURL {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	g.client = client
	return g, nil
}

// Geocode resolves a free-text address to coordinates
func (g *Geocoder) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	if g.client == nil {
		return nil, &UpstreamError{Kind: ErrMissingCredential, Detail: "GOOGLE_MAPS_API_KEY is not set"}
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, classifyMapsErr(err)
	}
	if len(results) == 0 {
		return nil, &UpstreamError{Kind: ErrNoResults, Status: "ZERO_RESULTS", Detail: address}
	}

	r := results[0]
	label := r.FormattedAddress
	if label == "" {
		label = address
	}

	g.logger.Debug().
		Str("address", address).
		Str("place_id", r.PlaceID).
		Msg("Geocoded home address")

	return &GeocodeResult{
		Label:   label,
		Coords:  models.Coordinate{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		PlaceID: r.PlaceID,
	}, nil
}

// ReverseGeocode finds a readable label for a coordinate, preferring the neighborhood name
func (g *Geocoder) ReverseGeocode(ctx context.Context, c models.Coordinate) (*GeocodeResult, error) {
	if g.client == nil {
		return nil, &UpstreamError{Kind: ErrMissingCredential, Detail: "GOOGLE_MAPS_API_KEY is not set"}
	}
	if err := ValidateCoordinate(c.Lat, c.Lng); err != nil {
		return nil, err
	}

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: c.Lat, Lng: c.Lng},
	})
	if err != nil {
		return nil, classifyMapsErr(err)
	}
	if len(results) == 0 {
		return nil, &UpstreamError{Kind: ErrNoResults, Status: "ZERO_RESULTS"}
	}

	label := results[0].FormattedAddress
	for _, comp := range results[0].AddressComponents {
		if containsType(comp.Types, "sublocality") || containsType(comp.Types, "neighborhood") {
			label = comp.LongName
			break
		}
	}

	return &GeocodeResult{Label: label, Coords: c, PlaceID: results[0].PlaceID}, nil
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// classifyMapsErr sorts maps client errors into transport and status failures.
// Status failures are formatted by the client as "maps: STATUS - message".
func classifyMapsErr(err error) error {
	if classifyTransport(err) {
		return upstreamErr(ErrUpstreamUnreachable, "", "%v", redactErr(err))
	}

	msg := err.Error()
	status := ""
	if rest, ok := strings.CutPrefix(msg, "maps: "); ok {
		status, msg, _ = strings.Cut(rest, " - ")
	}
	return &UpstreamError{Kind: ErrUpstreamRejected, Status: status, Detail: msg}
}
