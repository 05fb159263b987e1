package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/service"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// PlacesHandler serves nearby place lookups
type PlacesHandler struct {
	service *service.PlacesService
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(service *service.PlacesService) *PlacesHandler {
	return &PlacesHandler{service: service}
}

type nearbyQuery struct {
	Lat        *float64 `form:"lat" binding:"required"`
	Lng        *float64 `form:"lng" binding:"required"`
	RadiusKm   float64  `form:"radiusKm"`
	MaxResults int      `form:"maxResults"`
	Keyword    string   `form:"keyword"`
	OpenNow    bool     `form:"opennow"`
}

// Nearby returns normalized restaurants around a coordinate
// GET /api/v1/places?lat=&lng=&radiusKm=&maxResults=&keyword=&opennow=
func (h *PlacesHandler) Nearby(c *gin.Context) {
	var q nearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	result, err := h.service.Search(c.Request.Context(), places.SearchRequest{
		Lat:        *q.Lat,
		Lng:        *q.Lng,
		RadiusKm:   q.RadiusKm,
		MaxResults: q.MaxResults,
		Keyword:    q.Keyword,
		OpenNow:    q.OpenNow,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}
