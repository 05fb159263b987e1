package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/spatial"
)

// Request limits
const (
	DefaultBaseURL    = "https://maps.googleapis.com"
	nearbySearchPath  = "/maps/api/place/nearbysearch/json"
	DefaultRadiusKm   = 5.0
	DefaultMaxResults = 12
	MaxResultsCap     = 20
	MaxKeywordRunes   = 120
)

// ClientConfig configures the nearby-search client
type ClientConfig struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	DefaultMaxResults int
}

// SearchRequest is a nearby lookup around a coordinate
type SearchRequest struct {
	Lat        float64
	Lng        float64
	RadiusKm   float64
	MaxResults int
	Keyword    string
	OpenNow    bool
}

// Normalized clamps radius to 1-20 km, results to 1-20 and the keyword to 120 runes
func (r SearchRequest) Normalized(defaultMax int) SearchRequest {
	if r.RadiusKm <= 0 {
		r.RadiusKm = DefaultRadiusKm
	}
	r.RadiusKm = spatial.Clamp(r.RadiusKm, models.MinRadiusKm, models.MaxRadiusKm)

	if r.MaxResults <= 0 {
		r.MaxResults = defaultMax
	}
	r.MaxResults = spatial.ClampInt(r.MaxResults, 1, MaxResultsCap)

	if utf8.RuneCountInString(r.Keyword) > MaxKeywordRunes {
		r.Keyword = string([]rune(r.Keyword)[:MaxKeywordRunes])
	}
	return r
}

// RadiusMeters is the search radius as sent upstream
func (r SearchRequest) RadiusMeters() int {
	return int(r.RadiusKm*1000 + 0.5)
}

// ValidateCoordinate rejects non-finite or out-of-range coordinates at intake
func ValidateCoordinate(lat, lng float64) error {
	if !spatial.Valid(models.Coordinate{Lat: lat, Lng: lng}) {
		return ErrInvalidCoordinate
	}
	return nil
}

// Client performs Google Places nearby searches
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     arbor.ILogger
}

// NewClient creates a new nearby-search client
func NewClient(config ClientConfig, logger arbor.ILogger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.DefaultMaxResults <= 0 {
		config.DefaultMaxResults = DefaultMaxResults
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    limiter,
		logger:     logger,
	}
}

// nearbyResponse is the subset of the Nearby Search payload we read
type nearbyResponse struct {
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry *struct {
			Location *models.Coordinate `json:"location"`
		} `json:"geometry"`
		Rating           *float64 `json:"rating"`
		UserRatingsTotal *int     `json:"user_ratings_total"`
		PriceLevel       *int     `json:"price_level"`
		Types            []string `json:"types"`
		BusinessStatus   string   `json:"business_status"`
		OpeningHours     *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Nearby returns up to MaxResults restaurants around the request coordinate
func (c *Client) Nearby(ctx context.Context, req SearchRequest) ([]RawPlace, error) {
	if c.config.APIKey == "" {
		return nil, &UpstreamError{Kind: ErrMissingCredential, Detail: "GOOGLE_MAPS_API_KEY is not set"}
	}
	if err := ValidateCoordinate(req.Lat, req.Lng); err != nil {
		return nil, err
	}
	req = req.Normalized(c.config.DefaultMaxResults)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, upstreamErr(ErrUpstreamUnreachable, "", "rate limiter: %v", err)
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", req.Lat, req.Lng))
	params.Set("radius", strconv.Itoa(req.RadiusMeters()))
	params.Set("type", "restaurant")
	if req.Keyword != "" {
		params.Set("keyword", req.Keyword)
	}
	if req.OpenNow {
		params.Set("opennow", "true")
	}

	// Redact API key in logs
	c.logger.Debug().
		Str("url", c.config.BaseURL+nearbySearchPath+"?"+params.Encode()+"&key=***REDACTED***").
		Msg("Calling Google Places Nearby Search API")

	params.Set("key", c.config.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+nearbySearchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// url.Error carries the full URL including the key
		return nil, upstreamErr(ErrUpstreamUnreachable, "", "%v", redactErr(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, upstreamErr(ErrUpstreamUnreachable, resp.Status, "%s", string(body))
	}

	var apiResp nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, upstreamErr(ErrUpstreamRejected, "", "failed to decode API response: %v", err)
	}

	if apiResp.Status != "OK" && apiResp.Status != "ZERO_RESULTS" {
		return nil, upstreamErr(ErrUpstreamRejected, apiResp.Status, "%s", apiResp.ErrorMessage)
	}

	if len(apiResp.Results) > req.MaxResults {
		apiResp.Results = apiResp.Results[:req.MaxResults]
	}

	raws := make([]RawPlace, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		raw := RawPlace{
			ID:               r.PlaceID,
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Area:             r.Vicinity,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			PriceLevel:       r.PriceLevel,
			Types:            r.Types,
			BusinessStatus:   r.BusinessStatus,
		}
		if r.Geometry != nil && r.Geometry.Location != nil {
			loc := *r.Geometry.Location
			raw.Coords = &loc
		}
		if r.OpeningHours != nil {
			raw.OpeningHours = &OpeningHours{OpenNow: r.OpeningHours.OpenNow}
		}
		raws = append(raws, raw)
	}

	c.logger.Info().
		Float64("latitude", req.Lat).
		Float64("longitude", req.Lng).
		Int("radius", req.RadiusMeters()).
		Str("keyword", req.Keyword).
		Int("results_count", len(raws)).
		Str("status", apiResp.Status).
		Msg("Google Places Nearby Search completed")

	return raws, nil
}

func redactErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s places endpoint: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
