package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/httpresp"
	"github.com/barbercloud/agenda-api/internal/models"
)

type LogsHandler struct {
	db *gorm.DB
}

func NewLogsHandler(db *gorm.DB) *LogsHandler {
	return &LogsHandler{db: db}
}

// List returns a shop's audit entries newest first with related records
// resolved. A shop with no entries gets an empty array, not a 404.
func (h *LogsHandler) List(c *gin.Context) {
	shopID, err := strconv.ParseUint(c.Param("shop_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Malformed identifier.")
		return
	}

	limitStr := c.DefaultQuery("limit", "100")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.ActionLog
	if err := h.db.
		Preload("Barber").
		Preload("Client").
		Preload("Appointment").
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {

		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, logs)
}
