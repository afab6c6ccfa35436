package handler

import (
	"net/http"

	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	store  ApplicationStore
	events EventEmitter
}

func NewApplicationHandler(store ApplicationStore, events EventEmitter) *ApplicationHandler {
	if events == nil {
		events = nopEmitter{}
	}
	return &ApplicationHandler{store: store, events: events}
}

func isReviewer(userType string) bool {
	return userType == model.UserTypeNGO || userType == model.UserTypePlatformAdmin
}

// Create files an application for the caller. userId always comes from the
// token and reviewedBy is never taken from the client.
func (h *ApplicationHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Access token required")
		return
	}
	data, ok := bindRecord(c)
	if !ok {
		return
	}
	data = data.Without("reviewedBy")
	data["userId"] = claims.UserID

	app, err := h.store.AddVolunteerApplication(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	h.events.Emit(c.Request.Context(), pkg.EventApplicationCreated, app.ID(), map[string]any{
		"userId":     claims.UserID,
		"campaignId": app["campaignId"],
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "id": app.ID(), "application": app})
}

// List lets reviewers filter freely; everyone else only sees their own applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Access token required")
		return
	}
	f := filterFrom(c, "status", "userId", "campaignId")
	if !isReviewer(claims.UserType) {
		f["userId"] = claims.UserID
	}

	apps, err := h.store.GetVolunteerApplications(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// Update is for reviewers. A status change records who made it; reviewedBy
// is otherwise left untouched.
func (h *ApplicationHandler) Update(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Access token required")
		return
	}
	updates, ok := bindUpdate(c)
	if !ok {
		return
	}
	updates = updates.Without("userId", "appliedAt", "reviewedBy")
	if updates.Has("status") {
		updates["reviewedBy"] = claims.UserID
	}

	app, err := h.store.UpdateVolunteerApplication(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, err)
		return
	}
	if updates.Has("status") {
		h.events.Emit(c.Request.Context(), pkg.EventApplicationReviewed, app.ID(), map[string]any{
			"status":     app["status"],
			"reviewedBy": claims.UserID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
