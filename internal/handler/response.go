package handler

import (
	"net/http"

	"NGO_Platform/internal/model"
	"NGO_Platform/internal/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// immutableFields are dropped from update bodies.
var immutableFields = []string{"id", "createdAt"}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindBadRequest, service.KindConflict:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError maps err onto the JSON error envelope. The full error is
// attached to the context for the logging middleware; clients only see msg.
func respondError(c *gin.Context, err error) {
	kind, msg := service.Classify(err)
	_ = c.Error(err)
	c.JSON(statusFor(kind), gin.H{"success": false, "error": msg})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// bindRecord decodes a JSON object body. Anything else is a 400.
func bindRecord(c *gin.Context) (model.Record, bool) {
	var rec model.Record
	if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	return rec, true
}

// bindUpdate is bindRecord without the fields a client may not rewrite.
func bindUpdate(c *gin.Context) (model.Record, bool) {
	rec, ok := bindRecord(c)
	if !ok {
		return nil, false
	}
	return rec.Without(immutableFields...), true
}

// filterFrom copies the named query parameters into a filter; absent ones are skipped.
func filterFrom(c *gin.Context, keys ...string) model.Filter {
	f := model.Filter{}
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			f[k] = v
		}
	}
	return f
}
