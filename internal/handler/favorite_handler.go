package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/middleware"
	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/service"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// FavoriteHandler handles the session's saved places
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(service *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List returns the session's favorites
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.service.List(c.Request.Context(), c.GetString(middleware.SubjectKey))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, favorites)
}

type toggleRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
	Name    string `json:"name"`
	Area    string `json:"area"`
}

// Toggle saves the place, or unsaves it when already saved
// POST /api/v1/favorites
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	saved, err := h.service.Toggle(c.Request.Context(), c.GetString(middleware.SubjectKey), models.Favorite{
		PlaceID: req.PlaceID,
		Name:    req.Name,
		Area:    req.Area,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"place_id": req.PlaceID, "saved": saved})
}

// Remove deletes a favorite
// DELETE /api/v1/favorites/:placeId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	placeID := c.Param("placeId")
	if err := h.service.Remove(c.Request.Context(), c.GetString(middleware.SubjectKey), placeID); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"place_id": placeID, "saved": false})
}
