package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainReport "github.com/barbercloud/agenda-api/internal/domain/report"
	"github.com/barbercloud/agenda-api/internal/httperr"
	"github.com/barbercloud/agenda-api/internal/timezone"
	ucReport "github.com/barbercloud/agenda-api/internal/usecase/report"
)

type StatsHandler struct {
	stats *ucReport.Stats
}

func NewStatsHandler(stats *ucReport.Stats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) input(c *gin.Context) (ucReport.StatsInput, bool) {
	shopID, err := strconv.ParseUint(c.Param("shop_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidReference, "Malformed identifier.")
		return ucReport.StatsInput{}, false
	}

	in := ucReport.StatsInput{
		ShopID:  uint(shopID),
		Period:  domainReport.Period(c.Query("period")),
		GroupBy: ucReport.GroupBy(c.Query("group_by")),
	}

	if v := c.Query("from"); v != "" {
		from, err := time.ParseInLocation("2006-01-02", v, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Invalid from date.")
			return ucReport.StatsInput{}, false
		}
		in.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.ParseInLocation("2006-01-02", v, timezone.Location())
		if err != nil {
			httperr.BadRequest(c, httperr.CodeValidation, "Invalid to date.")
			return ucReport.StatsInput{}, false
		}
		// Inclusive end date.
		to = to.Add(24 * time.Hour)
		in.To = &to
	}

	return in, true
}

func (h *StatsHandler) Get(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	res, err := h.stats.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *StatsHandler) TopServices(c *gin.Context) {
	in, ok := h.input(c)
	if !ok {
		return
	}

	n, _ := strconv.Atoi(c.DefaultQuery("n", "5"))
	if n <= 0 {
		n = 5
	}

	ranking, err := h.stats.TopServices(c.Request.Context(), in, n)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": ranking})
}
