package handler

import (
	"context"
	"net/http"

	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/pkg"
	"NGO_Platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI is implemented by *service.AuthService.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password, userType string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (*service.ForgotResult, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	OAuthLogin(ctx context.Context, name, email, avatar string) (*service.AuthResult, error)
	Logout(ctx context.Context, claims *pkg.Claims) error
}

type AuthHandler struct {
	svc AuthAPI
}

func NewAuthHandler(svc AuthAPI) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	UserType string `json:"userType"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotReq struct {
	Email string `json:"email" binding:"required"`
}

type ResetReq struct {
	Email       string `json:"email" binding:"required"`
	ResetCode   string `json:"resetCode" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,max=72"`
}

type GoogleReq struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Name, a valid email and a password of at most 72 bytes are required")
		return
	}

	res, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.UserType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": res.User, "token": res.Token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": res.User, "token": res.Token})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email is required")
		return
	}

	res, err := h.svc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if res.Code == "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset code sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Password reset code sent (Demo: Check console)",
		"resetCode": res.Code,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Email, reset code and a new password of at most 72 bytes are required")
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), req.Email, req.ResetCode, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}

// Google signs in an identity the client already verified with Google.
func (h *AuthHandler) Google(c *gin.Context) {
	var req GoogleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	res, err := h.svc.OAuthLogin(c.Request.Context(), req.Name, req.Email, req.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": res.User, "token": res.Token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
