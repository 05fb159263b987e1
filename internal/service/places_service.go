package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/sync/singleflight"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
)

// DefaultCacheTTL is how long a lookup is served from the cache
const DefaultCacheTTL = 6 * time.Hour

// NearbySearcher performs the upstream places lookup
type NearbySearcher interface {
	Nearby(ctx context.Context, req places.SearchRequest) ([]places.RawPlace, error)
}

// PlaceCache stores normalized lookups by cache key
type PlaceCache interface {
	Get(ctx context.Context, key string) (*models.CachedPlaces, error)
	Put(ctx context.Context, entry *models.CachedPlaces) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// PlacesResult is a normalized lookup and where it came from
type PlacesResult struct {
	Key       string         `json:"key"`
	Places    []models.Place `json:"places"`
	Cached    bool           `json:"cached"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// PlacesService looks up nearby places through the result cache
type PlacesService struct {
	searcher   NearbySearcher
	cache      PlaceCache
	ttl        time.Duration
	defaultMax int
	logger     arbor.ILogger
	group      singleflight.Group
	now        func() time.Time
}

// NewPlacesService creates a places service; cache may be nil
func NewPlacesService(searcher NearbySearcher, cache PlaceCache, ttl time.Duration, defaultMax int, logger arbor.ILogger) *PlacesService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if defaultMax <= 0 {
		defaultMax = places.DefaultMaxResults
	}
	return &PlacesService{
		searcher:   searcher,
		cache:      cache,
		ttl:        ttl,
		defaultMax: defaultMax,
		logger:     logger,
		now:        time.Now,
	}
}

// Search returns normalized places around the request coordinate. Fresh cache
// entries are served without calling upstream; concurrent misses for the same
// key share one upstream call.
func (s *PlacesService) Search(ctx context.Context, req places.SearchRequest) (*PlacesResult, error) {
	if err := places.ValidateCoordinate(req.Lat, req.Lng); err != nil {
		return nil, err
	}
	req = req.Normalized(s.defaultMax)
	key := places.CacheKey(req.Lat, req.Lng, req.RadiusKm, req.Keyword, req.OpenNow)

	if entry := s.fresh(ctx, key); entry != nil {
		return &PlacesResult{
			Key:       key,
			Places:    limitPlaces(entry.Places, req.MaxResults),
			Cached:    true,
			FetchedAt: entry.FetchedAt,
		}, nil
	}

	// The shared lookup outlives any one caller; the client timeout bounds it
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.fetch(context.WithoutCancel(ctx), key, req)
	})
	if err != nil {
		return nil, err
	}

	result := *v.(*PlacesResult)
	result.Places = limitPlaces(result.Places, req.MaxResults)
	if shared {
		s.logger.Debug().Str("key", key).Msg("Shared in-flight places lookup")
	}
	return &result, nil
}

func (s *PlacesService) fresh(ctx context.Context, key string) *models.CachedPlaces {
	if s.cache == nil {
		return nil
	}
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Places cache read failed")
		return nil
	}
	if entry == nil || s.now().Sub(entry.FetchedAt) >= s.ttl {
		return nil
	}
	return entry
}

// fetch always asks upstream for the full page so the cached entry can serve any requested count
func (s *PlacesService) fetch(ctx context.Context, key string, req places.SearchRequest) (*PlacesResult, error) {
	req.MaxResults = places.MaxResultsCap
	raws, err := s.searcher.Nearby(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}

	entry := &models.CachedPlaces{
		Key:       key,
		Places:    places.NormalizeAll(raws),
		FetchedAt: s.now(),
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, entry); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("Places cache write failed")
		}
	}

	return &PlacesResult{Key: key, Places: entry.Places, FetchedAt: entry.FetchedAt}, nil
}

// PurgeExpired removes cache entries older than the TTL
func (s *PlacesService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.DeleteOlderThan(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info().Int("removed", int(n)).Msg("Purged expired places cache entries")
	}
	return n, nil
}

func limitPlaces(list []models.Place, max int) []models.Place {
	if max > 0 && len(list) > max {
		return list[:max]
	}
	return list
}
