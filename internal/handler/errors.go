package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/places"
	"github.com/jengzang/food-itinerary-go/internal/service"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// statusFor maps service and upstream errors to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, places.ErrInvalidCoordinate):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound), errors.Is(err, places.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, places.ErrUpstreamUnreachable), errors.Is(err, places.ErrUpstreamRejected):
		return http.StatusBadGateway
	default:
		// includes ErrMissingCredential: a server configuration problem
		return http.StatusInternalServerError
	}
}

// writeError sends err in the response envelope
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch status := statusFor(err); status {
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadGateway:
		response.BadGateway(c, err.Error())
	default:
		if errors.Is(err, places.ErrMissingCredential) {
			response.InternalError(c, "Google Maps API key is not configured")
			return
		}
		response.InternalError(c, "Internal server error")
	}
}
