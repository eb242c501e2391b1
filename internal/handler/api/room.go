package api

import (
	"net/http"

	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary List rooms
// @Description List bookable rooms ordered by name
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromRoomViews(rooms)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	rm, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := resdto.FromRoomView(rm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote a slot
// @Description Estimate the price of a slot without booking it
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param startTime query string true "Start (HH:MM)"
// @Param endTime query string true "End (HH:MM)"
// @Param plan query string false "basic, fiscal or full" default(basic)
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/quote [get]
func (h *RoomHandler) Quote(c *gin.Context) {
	var query reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "startTime and endTime are required", nil)
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), c.Param("id"), query.StartTime, query.EndTime, query.Plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
