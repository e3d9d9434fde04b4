package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/timezone"
	ucAppointment "github.com/barbercloud/agenda-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availability *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(uc *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: uc}
}

// Get enumerates bookable slots for a shop and date; barber_id narrows to a
// single barber.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	shopID, ok := parseID(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, httperr.CodeValidation, "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid date.")
		return
	}

	var barberID uint
	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidReference, "Malformed identifier.")
			return
		}
		barberID = uint(id)
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		ShopID:   shopID,
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
