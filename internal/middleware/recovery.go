package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// NewRecoveryMiddleware turns a handler panic into a 500 with the generic
// error body and logs the stack. It must run inside the logging and metrics
// middleware so recovered requests are still recorded.
func NewRecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				_ = c.Error(fmt.Errorf("panic: %v", rec))
				AbortJSON(c, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		c.Next()
	}
}
