package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/service"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// GeocodingHandler handles home location lookups
type GeocodingHandler struct {
	service *service.GeocodingService
}

// NewGeocodingHandler creates a new geocoding handler
func NewGeocodingHandler(service *service.GeocodingService) *GeocodingHandler {
	return &GeocodingHandler{service: service}
}

// Geocode resolves an address
// GET /api/v1/geocode?address=
func (h *GeocodingHandler) Geocode(c *gin.Context) {
	result, err := h.service.Resolve(c.Request.Context(), c.Query("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

type reverseQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lng *float64 `form:"lng" binding:"required"`
}

// Reverse labels a coordinate
// GET /api/v1/geocode/reverse?lat=&lng=
func (h *GeocodingHandler) Reverse(c *gin.Context) {
	var q reverseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	result, err := h.service.Label(c.Request.Context(), models.Coordinate{Lat: *q.Lat, Lng: *q.Lng})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}
