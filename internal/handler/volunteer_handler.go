package handler

import (
	"net/http"

	"NGO_Platform/internal/middleware"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	store VolunteerStore
}

func NewVolunteerHandler(store VolunteerStore) *VolunteerHandler {
	return &VolunteerHandler{store: store}
}

func (h *VolunteerHandler) List(c *gin.Context) {
	volunteers, err := h.store.GetVolunteers(c.Request.Context(), filterFrom(c, "campaignId", "userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "volunteers": volunteers})
}

func (h *VolunteerHandler) Create(c *gin.Context) {
	data, ok := bindRecord(c)
	if !ok {
		return
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		data["userId"] = claims.UserID
	}
	id, err := h.store.AddVolunteer(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
