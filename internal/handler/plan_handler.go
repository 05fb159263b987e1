package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/models"
	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/service"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// PlanHandler serves itinerary planning
type PlanHandler struct {
	service *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

func bindPlanRequest(c *gin.Context) (service.PlanRequest, bool) {
	req := service.PlanRequest{Preferences: models.DefaultPreferences()}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return req, false
	}
	if home := req.Preferences.Home; home != nil {
		if err := places.ValidateCoordinate(home.Lat, home.Lng); err != nil {
			writeError(c, err)
			return req, false
		}
	}
	return req, true
}

// Plan builds the upscale and cheap itineraries
// POST /api/v1/plan
func (h *PlanHandler) Plan(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Plan(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Candidates scores every place without filtering
// POST /api/v1/candidates?tier=cheap|comfortable
func (h *PlanHandler) Candidates(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Candidates(c.Request.Context(), req, models.BudgetTier(c.Query("tier")))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Outings lists the outing templates and the selectable cuisines
// GET /api/v1/outings
func (h *PlanHandler) Outings(c *gin.Context) {
	response.Success(c, gin.H{
		"outings":    models.OutingTemplates,
		"cuisines":   places.Cuisines(),
		"defaults":   models.DefaultPreferences(),
		"max_buffer": models.MaxBufferMins,
		"max_hours":  models.MaxHours,
		"radius_km":  []float64{models.MinRadiusKm, models.MaxRadiusKm},
	})
}
