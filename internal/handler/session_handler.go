package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/auth"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// SessionHandler issues anonymous session tokens
type SessionHandler struct {
	issuer *auth.TokenIssuer
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(issuer *auth.TokenIssuer) *SessionHandler {
	return &SessionHandler{issuer: issuer}
}

// Create issues a new session
// POST /api/v1/session
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.issuer.Issue()
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, session)
}
