package api

import (
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Calendar grid
// @Description Reservations bucketed by day for a day, week (Sunday first) or month grid. Cancelled reservations are included. Clients see only the slot and status of other clients' reservations.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param view query string false "day, week or month" default(month)
// @Param date query string true "Anchor date (YYYY-MM-DD)"
// @Param roomId query string false "Room ID"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /calendar [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, anchor, err := query.Parse()
	if err != nil {
		respondError(c, err)
		return
	}
	cal, err := h.q.Calendar(c.Request.Context(), view, anchor, query.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromCalendarView(cal)
	if err != nil {
		respondError(c, err)
		return
	}
	if !actor.IsAdmin() {
		resp.RedactForeign(actor.ClientID)
	}
	c.JSON(http.StatusOK, resp)
}
