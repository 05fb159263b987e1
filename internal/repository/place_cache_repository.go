package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

// PlaceCacheRepository stores normalized places lookups by cache key
type PlaceCacheRepository struct {
	db *sql.DB
}

// NewPlaceCacheRepository creates a new place cache repository
func NewPlaceCacheRepository(db *sql.DB) *PlaceCacheRepository {
	return &PlaceCacheRepository{db: db}
}

// Get returns the cached entry for key, or nil when there is none
func (r *PlaceCacheRepository) Get(ctx context.Context, key string) (*models.CachedPlaces, error) {
	var (
		payload   string
		fetchedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT payload, fetched_at FROM place_cache WHERE cache_key = ?", key,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached places: %w", err)
	}

	entry := &models.CachedPlaces{Key: key, FetchedAt: time.UnixMilli(fetchedAt)}
	if err := json.Unmarshal([]byte(payload), &entry.Places); err != nil {
		return nil, fmt.Errorf("failed to decode cached places %s: %w", key, err)
	}
	return entry, nil
}

// Put inserts or replaces the entry for its key
func (r *PlaceCacheRepository) Put(ctx context.Context, entry *models.CachedPlaces) error {
	places := entry.Places
	if places == nil {
		places = []models.Place{}
	}
	payload, err := json.Marshal(places)
	if err != nil {
		return fmt.Errorf("failed to encode places: %w", err)
	}

	query := `
		INSERT INTO place_cache (cache_key, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`
	if _, err := r.db.ExecContext(ctx, query, entry.Key, string(payload), entry.FetchedAt.UnixMilli()); err != nil {
		return fmt.Errorf("failed to store cached places: %w", err)
	}
	return nil
}

// DeleteOlderThan removes entries fetched before cutoff and returns how many were removed
func (r *PlaceCacheRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM place_cache WHERE fetched_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cached places: %w", err)
	}
	return result.RowsAffected()
}
