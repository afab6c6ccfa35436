package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder receives one observation per request. metrics.Collector implements it.
type RequestRecorder interface {
	RecordHTTPRequest(method, route string, status int, d time.Duration)
}

// NewMetricsMiddleware labels requests by route template so ids do not
// explode label cardinality. Unmatched routes are reported as "unmatched".
func NewMetricsMiddleware(rec RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
