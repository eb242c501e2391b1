package api

import (
	"net/http"
	"strconv"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/user"
	reqdto "coworking-booking/internal/handler/dto/request"
	resdto "coworking-booking/internal/handler/dto/response"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room for a slot. Clients book for themselves and start pending; admins may pick the status.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List reservations, newest date first. Clients only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param clientId query string false "Client ID"
// @Param roomId query string false "Room ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param status query string false "Status"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, err)
		return
	}
	if !actor.IsAdmin() {
		if filter.ClientID != "" && filter.ClientID != actor.ClientID {
			respondForbidden(c)
			return
		}
		filter.ClientID = actor.ClientID
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List client reservations
// @Description List one client's reservations, newest date first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /clients/{id}/reservations [get]
func (h *ReservationHandler) ListByClient(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	clientID := c.Param("id")
	if !actor.IsAdmin() && clientID != actor.ClientID {
		respondForbidden(c)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	views, err := h.q.ListByClient(c.Request.Context(), clientID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !actor.IsAdmin() && view.ClientID != actor.ClientID {
		respondForbidden(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Change reservation status
// @Description Move a reservation through its lifecycle and optionally update its notes. Clients may only cancel their own.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "Status change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id := c.Param("id")
	if !actor.IsAdmin() {
		if !h.canClientChange(c, actor, id, req) {
			return
		}
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// canClientChange allows a client to cancel a reservation it owns and
// nothing else. It writes the error response itself.
func (h *ReservationHandler) canClientChange(c *gin.Context, actor user.Principal, id string, req reqdto.ChangeStatusRequest) bool {
	next, err := reservation.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return false
	}
	if next != reservation.StatusCancelled {
		respondForbidden(c)
		return false
	}
	current, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return false
	}
	if current.ClientID != actor.ClientID {
		respondForbidden(c)
		return false
	}
	return true
}

// @Summary Delete reservation
// @Description Permanently delete a reservation. Deleting an unknown id succeeds.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResponse{OK: true})
}

func principal(c *gin.Context) (user.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Unauthorized", nil)
		return user.Principal{}, false
	}
	return p, true
}
