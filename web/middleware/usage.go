package middleware

import (
	"strings"

	"thinker-ui/util/metrics"

	"github.com/gin-gonic/gin"
)

// CountUsage bumps the request counter for every completed page request.
// Static assets are not counted.
func CountUsage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if strings.Contains(c.Request.URL.Path, "/assets/") {
			return
		}
		metrics.RequestsServed.Inc()
	}
}
