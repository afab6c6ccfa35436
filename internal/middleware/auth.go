package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextClaimsKey = "claims"
	ContextUserIDKey = "user_id"
)

// Authenticator verifies a bearer token. service.AuthService implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*pkg.Claims, error)
}

// AuthMiddleware requires a valid bearer token: 401 when absent, 403 when it
// fails verification or has been revoked.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			AbortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortAuthError(c, err)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims AuthMiddleware or OptionalAuth stored.
func ClaimsFrom(c *gin.Context) (*pkg.Claims, bool) {
	v, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*pkg.Claims)
	return claims, ok && claims != nil
}

func setClaims(c *gin.Context, claims *pkg.Claims) {
	c.Set(ContextClaimsKey, claims)
	c.Set(ContextUserIDKey, claims.UserID)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// abortAuthError attaches err to the context; the logging middleware reports it.
func abortAuthError(c *gin.Context, err error) {
	_ = c.Error(err)
	var se *service.Error
	if errors.As(err, &se) && se.Kind == service.KindInternal {
		AbortJSON(c, http.StatusInternalServerError, service.MsgInternal)
		return
	}
	AbortJSON(c, http.StatusForbidden, service.MsgInvalidToken)
}

// AbortJSON writes the platform error envelope and stops the chain.
func AbortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}
