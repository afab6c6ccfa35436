package handler

import (
	"net/http"

	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/pkg"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	store   DonationStore
	metrics DonationRecorder
	events  EventEmitter
}

func NewDonationHandler(store DonationStore, metrics DonationRecorder, events EventEmitter) *DonationHandler {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if events == nil {
		events = nopEmitter{}
	}
	return &DonationHandler{store: store, metrics: metrics, events: events}
}

func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.store.GetDonations(c.Request.Context(), filterFrom(c, "campaignId", "userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "donations": donations})
}

func (h *DonationHandler) GetByTransaction(c *gin.Context) {
	donation, err := h.store.GetDonationByTransactionID(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "donation": donation})
}

// Create is open to anonymous donors. With a valid token the donation is
// attributed to the caller whatever the body says.
func (h *DonationHandler) Create(c *gin.Context) {
	data, ok := bindRecord(c)
	if !ok {
		return
	}
	if claims, ok := middleware.ClaimsFrom(c); ok {
		data["userId"] = claims.UserID
	}

	id, txn, err := h.store.AddDonation(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}

	amount, _ := data.Float("amount")
	h.metrics.RecordDonation(amount)
	h.events.Emit(c.Request.Context(), pkg.EventDonationCreated, id, map[string]any{
		"campaignId":    data["campaignId"],
		"amount":        amount,
		"transactionId": txn,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "transactionId": txn})
}
