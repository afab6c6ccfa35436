package middleware

import (
	"net/http"
	"slices"

	"NGO_Platform/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireUserType lets the request through only when the caller's userType is
// one of allowed. Must run after AuthMiddleware.
func RequireUserType(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			AbortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}
		if !slices.Contains(allowed, claims.UserType) {
			AbortJSON(c, http.StatusForbidden, service.MsgInsufficientPerms)
			return
		}
		c.Next()
	}
}
