package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/ternarybob/arbor"

	"github.com/jengzang/food-itinerary-go/internal/auth"
	"github.com/jengzang/food-itinerary-go/internal/config"
	"github.com/jengzang/food-itinerary-go/internal/handler"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/repository"
	"github.com/jengzang/food-itinerary-go/internal/service"
)

// App is the wired HTTP application
type App struct {
	Router  *gin.Engine
	Handler http.Handler // Router wrapped with CORS
	Places  *service.PlacesService
}

// NewApp wires repositories, services and handlers on top of db
func NewApp(cfg *config.Config, db *sql.DB, logger arbor.ILogger) (*App, error) {
	client := places.NewClient(places.ClientConfig{
		APIKey:            cfg.Places.APIKey,
		BaseURL:           cfg.Places.BaseURL,
		Timeout:           cfg.Places.TimeoutDuration(),
		RequestsPerSecond: cfg.Places.RequestsPerSecond,
		DefaultMaxResults: cfg.Places.DefaultMaxResults,
	}, logger)

	geocoder, err := places.NewGeocoder(cfg.Places.APIKey, cfg.Places.BaseURL, cfg.Places.TimeoutDuration(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	placesService := service.NewPlacesService(
		client,
		repository.NewPlaceCacheRepository(db),
		cfg.Places.CacheTTLDuration(),
		cfg.Places.DefaultMaxResults,
		logger,
	)
	planService := service.NewPlanService(placesService, logger)
	geocodingService := service.NewGeocodingService(geocoder, logger)
	favoriteService := service.NewFavoriteService(repository.NewFavoriteRepository(db), logger)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDuration())

	router := SetupRouter(cfg, Handlers{
		Session:   handler.NewSessionHandler(issuer),
		Places:    handler.NewPlacesHandler(placesService),
		Plan:      handler.NewPlanHandler(planService),
		Geocoding: handler.NewGeocodingHandler(geocodingService),
		Favorite:  handler.NewFavoriteHandler(favoriteService),
	}, issuer, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
	})

	return &App{Router: router, Handler: c.Handler(router), Places: placesService}, nil
}
