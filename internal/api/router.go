package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ternarybob/arbor"

	"github.com/jengzang/food-itinerary-go/internal/config"
	"github.com/jengzang/food-itinerary-go/internal/handler"
	"github.com/jengzang/food-itinerary-go/internal/middleware"
)

// Handlers are the endpoint groups mounted by SetupRouter
type Handlers struct {
	Session   *handler.SessionHandler
	Places    *handler.PlacesHandler
	Plan      *handler.PlanHandler
	Geocoding *handler.GeocodingHandler
	Favorite  *handler.FavoriteHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers, verifier middleware.TokenVerifier, logger arbor.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Food Itinerary API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	{
		api.POST("/session", h.Session.Create)
		api.GET("/outings", h.Plan.Outings)

		api.GET("/places", h.Places.Nearby)
		api.POST("/plan", h.Plan.Plan)
		api.POST("/candidates", h.Plan.Candidates)

		geocode := api.Group("/geocode")
		{
			geocode.GET("", h.Geocoding.Geocode)
			geocode.GET("/reverse", h.Geocoding.Reverse)
		}

		favorites := api.Group("/favorites", middleware.Auth(verifier))
		{
			favorites.GET("", h.Favorite.List)
			favorites.POST("", h.Favorite.Toggle)
			favorites.DELETE("/:placeId", h.Favorite.Remove)
		}
	}

	return r
}
