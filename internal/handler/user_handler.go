package handler

import (
	"net/http"

	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/service"
	"NGO_Platform/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// adminOnlyUserFields may only be changed by a platform_admin.
var adminOnlyUserFields = []string{"userType", "verified", "googleId"}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// validEmail applies the same "email" rule the register binding uses.
func validEmail(v any) bool {
	email, ok := v.(string)
	if !ok || email == "" {
		return false
	}
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return true
	}
	return validate.Var(email, "email") == nil
}

// selfOrAdmin resolves the caller and rejects access to other accounts.
func selfOrAdmin(c *gin.Context) (*pkg.Claims, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Access token required")
		return nil, false
	}
	if claims.UserID != c.Param("id") && claims.UserType != model.UserTypePlatformAdmin {
		respondError(c, service.ErrForbidden)
		return nil, false
	}
	return claims, true
}

func (h *UserHandler) Get(c *gin.Context) {
	if _, ok := selfOrAdmin(c); !ok {
		return
	}
	user, err := h.store.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": model.PublicUser(user)})
}

// Update never touches credentials or reset state; those go through the auth endpoints.
func (h *UserHandler) Update(c *gin.Context) {
	claims, ok := selfOrAdmin(c)
	if !ok {
		return
	}
	updates, ok := bindUpdate(c)
	if !ok {
		return
	}
	if updates.Has("email") && !validEmail(updates["email"]) {
		respondError(c, store.ErrInvalidEmail)
		return
	}
	updates = updates.Without(model.PrivateUserFields...)
	if claims.UserType != model.UserTypePlatformAdmin {
		updates = updates.Without(adminOnlyUserFields...)
	}

	if err := h.store.UpdateUser(c.Request.Context(), c.Param("id"), updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
