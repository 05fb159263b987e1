package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/food-itinerary-go/internal/models"
)

// FavoriteRepository handles database operations for saved places
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns the owner's favorites, newest first
func (r *FavoriteRepository) List(ctx context.Context, owner string) ([]models.Favorite, error) {
	query := `
		SELECT id, owner, place_id, name, area, created_at
		FROM favorites
		WHERE owner = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var (
			f         models.Favorite
			createdAt int64
		)
		if err := rows.Scan(&f.ID, &f.Owner, &f.PlaceID, &f.Name, &f.Area, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		f.CreatedAt = time.UnixMilli(createdAt)
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// Add saves a favorite; adding an existing place is a no-op
func (r *FavoriteRepository) Add(ctx context.Context, tx *sql.Tx, f *models.Favorite) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO favorites (owner, place_id, name, area, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner, place_id) DO NOTHING
	`
	result, err := r.exec(ctx, tx, query, f.Owner, f.PlaceID, f.Name, f.Area, f.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	if n, _ := result.RowsAffected(); n > 0 {
		if id, err := result.LastInsertId(); err == nil {
			f.ID = id
		}
	}
	return nil
}

// Remove deletes a favorite and reports whether it existed
func (r *FavoriteRepository) Remove(ctx context.Context, tx *sql.Tx, owner, placeID string) (bool, error) {
	result, err := r.exec(ctx, tx, "DELETE FROM favorites WHERE owner = ? AND place_id = ?", owner, placeID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

// Exists reports whether the owner has saved placeID
func (r *FavoriteRepository) Exists(ctx context.Context, tx *sql.Tx, owner, placeID string) (bool, error) {
	query := "SELECT COUNT(*) FROM favorites WHERE owner = ? AND place_id = ?"

	var count int
	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, owner, placeID).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, query, owner, placeID).Scan(&count)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// DB exposes the handle for callers that need a transaction
func (r *FavoriteRepository) DB() *sql.DB {
	return r.db
}

func (r *FavoriteRepository) exec(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) (sql.Result, error) {
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}
