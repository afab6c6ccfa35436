package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewLoggingMiddleware emits one JSON http_request line per request with
// method, path, status, duration_ms and user_id when authenticated.
// 4xx logs at WARN, 5xx at ERROR.
func NewLoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Float64("duration_ms", float64(duration.Nanoseconds())/float64(time.Millisecond)),
			slog.String("client_ip", c.ClientIP()),
		}
		if userID := c.GetString(ContextUserIDKey); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		logger.Log(c.Request.Context(), level, "http_request", attrs...)
	}
}
