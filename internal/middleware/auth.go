package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/food-itinerary-go/internal/auth"
	"github.com/jengzang/food-itinerary-go/pkg/response"
)

// SubjectKey is the gin context key holding the session subject
const SubjectKey = "subject"

// TokenVerifier checks a session token and returns its subject
type TokenVerifier interface {
	Verify(token string) (string, error)
}

var _ TokenVerifier = (*auth.TokenIssuer)(nil)

// Auth requires a valid "Authorization: Bearer <token>" header
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Error(c, http.StatusUnauthorized, "Missing session token")
			c.Abort()
			return
		}

		subject, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid session token")
			c.Abort()
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
