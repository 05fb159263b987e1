package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ternarybob/arbor"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
)

const maxAddressRunes = 200

// Geocoder resolves home locations
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*places.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, c models.Coordinate) (*places.GeocodeResult, error)
}

// GeocodingService resolves the home location from an address or coordinate
type GeocodingService struct {
	geocoder Geocoder
	logger   arbor.ILogger
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(geocoder Geocoder, logger arbor.ILogger) *GeocodingService {
	return &GeocodingService{geocoder: geocoder, logger: logger}
}

// Resolve geocodes a free-text home address
func (s *GeocodingService) Resolve(ctx context.Context, address string) (*places.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(address) > maxAddressRunes {
		return nil, fmt.Errorf("%w: address is longer than %d characters", ErrInvalidInput, maxAddressRunes)
	}

	result, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Geocoding failed")
		return nil, fmt.Errorf("geocode: %w", err)
	}
	return result, nil
}

// Label finds a readable label for a coordinate
func (s *GeocodingService) Label(ctx context.Context, c models.Coordinate) (*places.GeocodeResult, error) {
	if err := places.ValidateCoordinate(c.Lat, c.Lng); err != nil {
		return nil, err
	}

	result, err := s.geocoder.ReverseGeocode(ctx, c)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Reverse geocoding failed")
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}
	return result, nil
}
