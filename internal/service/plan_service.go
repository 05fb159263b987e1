package service

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/planner"
)

// PlanRequest is the input of a planning run. When Places is nil the pool is
// looked up around Preferences.Home.
type PlanRequest struct {
	Preferences models.Preferences `json:"preferences"`
	Places      []places.RawPlace  `json:"places,omitempty"`
	MaxResults  int                `json:"max_results,omitempty"`
}

// Place pool sources
const (
	SourceRequest = "request"
	SourceCache   = "cache"
	SourceLive    = "live"
)

// PlanResult is a plan plus the pool it was computed from
type PlanResult struct {
	Preferences models.Preferences `json:"preferences"`
	Plan        models.Plan        `json:"plan"`
	PoolSize    int                `json:"pool_size"`
	Source      string             `json:"source"`
}

// CandidatesResult lists every place with its score, unfiltered
type CandidatesResult struct {
	Preferences models.Preferences    `json:"preferences"`
	Candidates  []planner.ScoredPlace `json:"candidates"`
	Source      string                `json:"source"`
}

// PlanService builds itineraries for both budget tiers
type PlanService struct {
	places *PlacesService
	logger arbor.ILogger
}

// NewPlanService creates a new plan service
func NewPlanService(placesService *PlacesService, logger arbor.ILogger) *PlanService {
	return &PlanService{places: placesService, logger: logger}
}

// Plan normalizes the preferences, resolves the place pool and plans both tiers
func (s *PlanService) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	pref := req.Preferences.Normalized()
	pool, source, err := s.pool(ctx, pref, req)
	if err != nil {
		return nil, err
	}

	plan := planner.Plan(pref, pool)

	s.logger.Info().
		Str("outing", string(pref.Outing)).
		Str("style", string(pref.TravelStyle)).
		Int("pool", len(pool)).
		Int("upscale_candidates", len(plan.Upscale.Ranked)).
		Int("cheap_candidates", len(plan.Cheap.Ranked)).
		Str("source", source).
		Msg("Plan computed")

	return &PlanResult{Preferences: pref, Plan: plan, PoolSize: len(pool), Source: source}, nil
}

// Candidates scores the pool without eligibility filtering. A valid tier
// restricts the pool to that tier first.
func (s *PlanService) Candidates(ctx context.Context, req PlanRequest, tier models.BudgetTier) (*CandidatesResult, error) {
	if tier != "" && !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown tier %q", ErrInvalidInput, tier)
	}

	pref := req.Preferences.Normalized()
	pool, source, err := s.pool(ctx, pref, req)
	if err != nil {
		return nil, err
	}

	if tier != "" {
		filtered := make([]models.Place, 0, len(pool))
		for _, p := range pool {
			if p.FoodBudget == tier {
				filtered = append(filtered, p)
			}
		}
		pool = filtered
	}

	return &CandidatesResult{
		Preferences: pref,
		Candidates:  planner.ScoreAll(pref, pool),
		Source:      source,
	}, nil
}

func (s *PlanService) pool(ctx context.Context, pref models.Preferences, req PlanRequest) ([]models.Place, string, error) {
	if req.Places != nil {
		return places.NormalizeAll(req.Places), SourceRequest, nil
	}

	if pref.Home == nil {
		return nil, "", fmt.Errorf("%w: home location is required when no places are given", ErrInvalidInput)
	}
	if s.places == nil {
		return nil, "", fmt.Errorf("%w: places lookup is not configured", places.ErrMissingCredential)
	}

	result, err := s.places.Search(ctx, places.SearchRequest{
		Lat:        pref.Home.Lat,
		Lng:        pref.Home.Lng,
		RadiusKm:   pref.RadiusKm,
		MaxResults: req.MaxResults,
		Keyword:    places.KeywordFor(pref.Cuisines),
		OpenNow:    pref.OpenNow,
	})
	if err != nil {
		return nil, "", err
	}

	source := SourceLive
	if result.Cached {
		source = SourceCache
	}
	return result.Places, source, nil
}
