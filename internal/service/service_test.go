package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/writers"

	"github.com/jengzang/food-itinerary-go/internal/database"
	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/repository"
)

type fakeSearcher struct {
	calls atomic.Int32
	raws  []places.RawPlace
	err   error
	gate  chan struct{}
	last  places.SearchRequest
	mu    sync.Mutex

	// truncate honours req.MaxResults like the real client
	truncate bool
}

func (f *fakeSearcher) Nearby(ctx context.Context, req places.SearchRequest) ([]places.RawPlace, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.last = req
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.truncate && req.MaxResults > 0 && len(f.raws) > req.MaxResults {
		return f.raws[:req.MaxResults], f.err
	}
	return f.raws, f.err
}

func intPtr(v int) *int { return &v }

func sampleRaws() []places.RawPlace {
	return []places.RawPlace{
		{PlaceID: "c1", Name: "Cheap One", Area: "Kalwa", PriceLevel: intPtr(1),
			Coords: &models.Coordinate{Lat: 19.21, Lng: 72.98}, Types: []string{"restaurant"}},
		{PlaceID: "u1", Name: "Upscale One", Area: "Thane", PriceLevel: intPtr(3),
			Coords: &models.Coordinate{Lat: 19.22, Lng: 73.00}, Types: []string{"restaurant"}},
		{PlaceID: "c2", Name: "Cheap Two", Area: "Airoli", PriceLevel: intPtr(0),
			Coords: &models.Coordinate{Lat: 19.23, Lng: 72.99}, Types: []string{"cafe"}},
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: database.MemoryPath}, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newPlacesService(t *testing.T, searcher NearbySearcher) (*PlacesService, *repository.PlaceCacheRepository) {
	t.Helper()
	cache := repository.NewPlaceCacheRepository(openTestDB(t))
	return NewPlacesService(searcher, cache, time.Hour, 12, arbor.NewLogger().WithWriters([]writers.IWriter{})), cache
}

func TestPlacesService_CachesResults(t *testing.T) {
	ctx := context.Background()
	searcher := &fakeSearcher{raws: sampleRaws()}
	svc, _ := newPlacesService(t, searcher)
	req := places.SearchRequest{Lat: 19.2, Lng: 72.97, RadiusKm: 5, Keyword: "Cafe"}

	first, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Len(t, first.Places, 3)
	assert.Equal(t, "places:19.2000:72.9700:r5:k=Cafe:o=0", first.Key)

	second, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Places[0].ID, second.Places[0].ID)
	assert.Equal(t, int32(1), searcher.calls.Load())

	// a nearby home within rounding shares the entry
	req.Lat = 19.20001
	third, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.True(t, third.Cached)

	req.MaxResults = 2
	limited, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.Len(t, limited.Places, 2)
}

func TestPlacesService_ExpiredEntryRefreshes(t *testing.T) {
	ctx := context.Background()
	searcher := &fakeSearcher{raws: sampleRaws()}
	svc, _ := newPlacesService(t, searcher)
	req := places.SearchRequest{Lat: 19.2, Lng: 72.97}

	_, err := svc.Search(ctx, req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	again, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.False(t, again.Cached)
	assert.Equal(t, int32(2), searcher.calls.Load())
}

func TestPlacesService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	svc, cache := newPlacesService(t, &fakeSearcher{})

	require.NoError(t, cache.Put(ctx, &models.CachedPlaces{Key: "old", FetchedAt: time.Now().Add(-2 * time.Hour)}))
	require.NoError(t, cache.Put(ctx, &models.CachedPlaces{Key: "new", FetchedAt: time.Now()}))

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPlacesService_Errors(t *testing.T) {
	ctx := context.Background()
	upstream := &places.UpstreamError{Kind: places.ErrUpstreamRejected, Status: "REQUEST_DENIED"}
	searcher := &fakeSearcher{err: upstream}
	svc, _ := newPlacesService(t, searcher)

	_, err := svc.Search(ctx, places.SearchRequest{Lat: 19.2, Lng: 72.97})
	assert.True(t, errors.Is(err, places.ErrUpstreamRejected))

	_, err = svc.Search(ctx, places.SearchRequest{Lat: 91, Lng: 72.97})
	assert.True(t, errors.Is(err, places.ErrInvalidCoordinate))
	assert.Equal(t, int32(1), searcher.calls.Load())
}

func TestPlacesService_SharesInFlightLookups(t *testing.T) {
	searcher := &fakeSearcher{raws: sampleRaws(), gate: make(chan struct{})}
	svc := NewPlacesService(searcher, nil, time.Hour, 12, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	req := places.SearchRequest{Lat: 19.2, Lng: 72.97}

	var wg sync.WaitGroup
	results := make([]*PlacesResult, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Search(context.Background(), req)
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}

	// wait until the first lookup is in flight, then give the others time to join it
	require.Eventually(t, func() bool { return searcher.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(searcher.gate)
	wg.Wait()

	assert.LessOrEqual(t, searcher.calls.Load(), int32(4))
	for _, r := range results {
		require.NotNil(t, r)
		assert.Len(t, r.Places, 3)
	}
}

func TestPlanService_UsesRequestPlaces(t *testing.T) {
	svc := NewPlanService(nil, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	pref := models.DefaultPreferences()
	pref.Home = &models.Coordinate{Lat: 19.20, Lng: 72.97}
	pref.BufferMins = 99

	result, err := svc.Plan(context.Background(), PlanRequest{Preferences: pref, Places: sampleRaws()})
	require.NoError(t, err)

	assert.Equal(t, SourceRequest, result.Source)
	assert.Equal(t, 3, result.PoolSize)
	assert.Equal(t, models.MaxBufferMins, result.Preferences.BufferMins)
	require.NotNil(t, result.Plan.Upscale.Itinerary)
	assert.Equal(t, "u1", result.Plan.Upscale.Itinerary.Place.PlaceID)
	require.NotNil(t, result.Plan.Cheap.Itinerary)
	assert.Equal(t, models.BudgetCheap, result.Plan.Cheap.Itinerary.Place.FoodBudget)
}

func TestPlanService_FetchesWhenNoPlaces(t *testing.T) {
	ctx := context.Background()
	searcher := &fakeSearcher{raws: sampleRaws()}
	placesSvc, _ := newPlacesService(t, searcher)
	svc := NewPlanService(placesSvc, arbor.NewLogger().WithWriters([]writers.IWriter{}))

	pref := models.DefaultPreferences()
	pref.Home = &models.Coordinate{Lat: 19.20, Lng: 72.97}
	pref.Cuisines = []string{"Cafe", "Pizza"}
	pref.OpenNow = true

	result, err := svc.Plan(ctx, PlanRequest{Preferences: pref})
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, "Cafe Pizza", searcher.last.Keyword)
	assert.True(t, searcher.last.OpenNow)

	result, err = svc.Plan(ctx, PlanRequest{Preferences: pref})
	require.NoError(t, err)
	assert.Equal(t, SourceCache, result.Source)
}

func TestPlanService_RequiresHome(t *testing.T) {
	svc := NewPlanService(nil, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	_, err := svc.Plan(context.Background(), PlanRequest{Preferences: models.DefaultPreferences()})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPlanService_Candidates(t *testing.T) {
	svc := NewPlanService(nil, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	pref := models.DefaultPreferences()
	pref.MaxHours = 1

	// no home: every place is 60 minutes each way, over the one hour limit
	raws := sampleRaws()

	result, err := svc.Candidates(context.Background(), PlanRequest{Preferences: pref, Places: raws}, models.BudgetCheap)
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	for _, c := range result.Candidates {
		assert.Equal(t, models.BudgetCheap, c.Place.FoodBudget)
		assert.Less(t, c.Score, 0.0)
	}

	all, err := svc.Candidates(context.Background(), PlanRequest{Preferences: pref, Places: raws}, "")
	require.NoError(t, err)
	assert.Len(t, all.Candidates, 3)

	_, err = svc.Candidates(context.Background(), PlanRequest{Preferences: pref, Places: raws}, "luxury")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFavoriteService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc := NewFavoriteService(repository.NewFavoriteRepository(openTestDB(t)), arbor.NewLogger().WithWriters([]writers.IWriter{}))

	saved, err := svc.Toggle(ctx, "alice", models.Favorite{PlaceID: "p1", Name: "Sardar"})
	require.NoError(t, err)
	assert.True(t, saved)

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sardar", list[0].Name)

	saved, err = svc.Toggle(ctx, "alice", models.Favorite{PlaceID: "p1"})
	require.NoError(t, err)
	assert.False(t, saved)

	list, err = svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Toggle(ctx, "alice", models.Favorite{PlaceID: "  "})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewFavoriteService(repository.NewFavoriteRepository(openTestDB(t)), arbor.NewLogger().WithWriters([]writers.IWriter{}))

	_, err := svc.Toggle(ctx, "alice", models.Favorite{PlaceID: "p1"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "alice", "p1"))
	assert.True(t, errors.Is(svc.Remove(ctx, "alice", "p1"), ErrNotFound))
}

func TestPlacesService_CacheServesLargerRequests(t *testing.T) {
	ctx := context.Background()
	searcher := &fakeSearcher{raws: sampleRaws(), truncate: true}
	svc, _ := newPlacesService(t, searcher)
	req := places.SearchRequest{Lat: 19.2, Lng: 72.97, MaxResults: 1}

	first, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Len(t, first.Places, 1)
	assert.Equal(t, places.MaxResultsCap, searcher.last.MaxResults)

	req.MaxResults = 20
	second, err := svc.Search(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Len(t, second.Places, 3)
	assert.Equal(t, int32(1), searcher.calls.Load())
}

func TestPlacesService_SharedLookupOutlivesCaller(t *testing.T) {
	searcher := &fakeSearcher{raws: sampleRaws(), gate: make(chan struct{})}
	svc := NewPlacesService(searcher, nil, time.Hour, 12, arbor.NewLogger().WithWriters([]writers.IWriter{}))
	req := places.SearchRequest{Lat: 19.2, Lng: 72.97}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := svc.Search(ctx, req)
		first <- err
	}()
	require.Eventually(t, func() bool { return searcher.calls.Load() == 1 }, time.Second, time.Millisecond)

	second := make(chan *PlacesResult, 1)
	go func() {
		r, err := svc.Search(context.Background(), req)
		assert.NoError(t, err)
		second <- r
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	close(searcher.gate)

	assert.NoError(t, <-first)
	r := <-second
	require.NotNil(t, r)
	assert.Len(t, r.Places, 3)
}
