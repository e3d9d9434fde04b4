package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type GridShiftPayload struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

type GridDayPayload struct {
	Day    int                `json:"day" binding:"required,min=1,max=31"`
	Active bool               `json:"active"`
	Open   string             `json:"open"`
	Close  string             `json:"close"`
	Shifts []GridShiftPayload `json:"shifts"`
}

type PublishScheduleRequest struct {
	Month int              `json:"month" binding:"required,min=1,max=12"`
	Year  int              `json:"year" binding:"required,min=2000,max=2100"`
	Days  []GridDayPayload `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var sched models.Schedule
	if err := h.db.Where("shop_id = ?", id).First(&sched).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "No published schedule.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, sched)
}

// Publish replaces the shop's staffing grid wholesale. Only the most recent
// grid is retained; there is no merge with the previous one.
func (h *ScheduleHandler) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Shop not found.")
			return
		}
		writeBusinessError(c, err)
		return
	}

	var req PublishScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	days := make([]models.GridDay, 0, len(req.Days))
	for _, d := range req.Days {
		shifts := make([]models.ShiftEntry, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			shifts = append(shifts, models.ShiftEntry{
				BarberID: s.BarberID,
				Start:    s.Start,
				End:      s.End,
			})
		}
		days = append(days, models.GridDay{
			Day:    d.Day,
			Active: d.Active,
			Open:   d.Open,
			Close:  d.Close,
			Shifts: shifts,
		})
	}

	sched := models.Schedule{
		ShopID: shop.ID,
		Month:  req.Month,
		Year:   req.Year,
		Days:   days,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shop_id = ?", shop.ID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Create(&sched).Error
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, sched)
}
