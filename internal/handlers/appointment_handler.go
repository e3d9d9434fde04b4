package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barbercloud/agenda-api/internal/domain/appointment"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/httpresp"
	"github.com/barbercloud/agenda-api/internal/models"
	"github.com/barbercloud/agenda-api/internal/timezone"
	ucAppointment "github.com/barbercloud/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *ucAppointment.BookAppointment
	finalize *ucAppointment.FinalizeAppointment
	cancel   *ucAppointment.CancelAppointment
	update   *ucAppointment.UpdateAppointment
	list     *ucAppointment.ListAppointments
	repo     domain.Repository
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	finalize *ucAppointment.FinalizeAppointment,
	cancel *ucAppointment.CancelAppointment,
	update *ucAppointment.UpdateAppointment,
	list *ucAppointment.ListAppointments,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		finalize: finalize,
		cancel:   cancel,
		update:   update,
		list:     list,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service  string  `json:"service" binding:"required"`
	DateTime string  `json:"datetime" binding:"required"`
	BarberID uint    `json:"barber_id" binding:"required"`
	ClientID uint    `json:"client_id" binding:"required"`
	ShopID   uint    `json:"shop_id" binding:"required"`
	Price    float64 `json:"price"`
}

type UpdateAppointmentRequest struct {
	Service *string  `json:"service,omitempty"`
	Price   *float64 `json:"price,omitempty"`
}

type FinalizeAppointmentRequest struct {
	Service *string  `json:"service,omitempty"`
	Price   *float64 `json:"price,omitempty"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Malformed identifier.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ShopID:   req.ShopID,
		BarberID: req.BarberID,
		ClientID: req.ClientID,
		Service:  req.Service,
		Price:    req.Price,
		DateTime: req.DateTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

// List filters by barber_id, client_id and date, all optional. A filter
// value that is present but unparsable (the web client sends the literal
// "undefined") matches nothing: the response is an empty list, never a 500.
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter domain.ListFilter

	if v := c.Query("client_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httpresp.List(c, []models.Appointment{})
			return
		}
		cid := uint(id)
		filter.ClientID = &cid
	}

	if v := c.Query("barber_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httpresp.List(c, []models.Appointment{})
			return
		}
		bid := uint(id)
		filter.BarberID = &bid
	}

	if v := c.Query("date"); v != "" {
		date, err := time.ParseInLocation("2006-01-02", v, timezone.Location())
		if err != nil {
			httpresp.List(c, []models.Appointment{})
			return
		}
		filter.Date = &date
	}

	aps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		Service: req.Service,
		Price:   req.Price,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Body is optional; finalize may carry a price/service correction.
	var req FinalizeAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
	}

	ap, err := h.finalize.Execute(c.Request.Context(), id, req.Price, req.Service)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, ap)
}
