package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	store EquipmentStore
}

func NewEquipmentHandler(store EquipmentStore) *EquipmentHandler {
	return &EquipmentHandler{store: store}
}

func (h *EquipmentHandler) List(c *gin.Context) {
	equipment, err := h.store.GetEquipment(c.Request.Context(), filterFrom(c, "campaignId", "status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "equipment": equipment})
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	data, ok := bindRecord(c)
	if !ok {
		return
	}
	id, err := h.store.AddEquipment(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	updates, ok := bindUpdate(c)
	if !ok {
		return
	}
	if err := h.store.UpdateEquipment(c.Request.Context(), c.Param("id"), updates); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
