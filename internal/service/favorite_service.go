package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/jengzang/food-itinerary-go/internal/database"
	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/repository"
)

// FavoriteService manages the per-session favorites set
type FavoriteService struct {
	repo   *repository.FavoriteRepository
	logger arbor.ILogger
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(repo *repository.FavoriteRepository, logger arbor.ILogger) *FavoriteService {
	return &FavoriteService{repo: repo, logger: logger}
}

// List returns the owner's favorites
func (s *FavoriteService) List(ctx context.Context, owner string) ([]models.Favorite, error) {
	return s.repo.List(ctx, owner)
}

// Toggle adds the place when absent and removes it when present.
// It returns whether the place is saved afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, owner string, fav models.Favorite) (bool, error) {
	fav.PlaceID = strings.TrimSpace(fav.PlaceID)
	if fav.PlaceID == "" {
		return false, fmt.Errorf("%w: place_id is required", ErrInvalidInput)
	}
	fav.Owner = owner

	var saved bool
	err := database.Transaction(s.repo.DB(), func(tx *sql.Tx) error {
		exists, err := s.repo.Exists(ctx, tx, owner, fav.PlaceID)
		if err != nil {
			return err
		}
		if exists {
			_, err = s.repo.Remove(ctx, tx, owner, fav.PlaceID)
			return err
		}
		saved = true
		return s.repo.Add(ctx, tx, &fav)
	})
	if err != nil {
		return false, err
	}

	s.logger.Debug().Str("place_id", fav.PlaceID).Bool("saved", saved).Msg("Favorite toggled")
	return saved, nil
}

// Remove deletes a favorite
func (s *FavoriteService) Remove(ctx context.Context, owner, placeID string) error {
	removed, err := s.repo.Remove(ctx, nil, owner, placeID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: favorite %s", ErrNotFound, placeID)
	}
	return nil
}
