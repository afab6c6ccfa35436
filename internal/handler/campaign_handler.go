package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	store CampaignStore
}

func NewCampaignHandler(store CampaignStore) *CampaignHandler {
	return &CampaignHandler{store: store}
}

// List accepts ?status= and ?category= filters.
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.store.GetCampaigns(c.Request.Context(), filterFrom(c, "status", "category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "campaigns": campaigns})
}

func (h *CampaignHandler) Get(c *gin.Context) {
	campaign, err := h.store.GetCampaignByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}

func (h *CampaignHandler) Create(c *gin.Context) {
	data, ok := bindRecord(c)
	if !ok {
		return
	}
	id, err := h.store.AddCampaign(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *CampaignHandler) Update(c *gin.Context) {
	updates, ok := bindUpdate(c)
	if !ok {
		return
	}
	if err := h.store.UpdateCampaign(c.Request.Context(), c.Param("id"), updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
