package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ternarybob/arbor"
)

// Logger middleware logs HTTP requests
func Logger(logger arbor.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}

		// The query string is not logged; it may carry coordinates
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Str("errors", c.Errors.String()).
			Msg("HTTP request")
	}
}
