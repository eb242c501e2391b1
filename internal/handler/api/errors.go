package api

import (
	"errors"
	"net/http"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins. Anything unmatched is a 500 with a generic message.
var errorMappings = []errorMapping{
	{reservation.ErrSchedulingConflict, http.StatusConflict, "Room is already booked for this time"},
	{reservation.ErrMissingField, http.StatusBadRequest, "Required field missing"},
	{reservation.ErrInvalidInterval, http.StatusBadRequest, "End time must be after start time"},
	{calendar.ErrInvalidTimeOfDay, http.StatusBadRequest, "Time must be HH:MM on a 30-minute boundary"},
	{calendar.ErrInvalidDateFormat, http.StatusBadRequest, "Date must be in YYYY-MM-DD format"},
	{calendar.ErrInvalidView, http.StatusBadRequest, "View must be one of day, week, month"},
	{reservation.ErrPastDate, http.StatusBadRequest, "Reservation date is in the past"},
	{reservation.ErrInvalidTransition, http.StatusBadRequest, "Status transition not allowed"},
	{reservation.ErrInvalidStatus, http.StatusBadRequest, "Invalid reservation status"},
	{client.ErrInvalidPlan, http.StatusBadRequest, "Invalid plan"},
	{commands.ErrRoomUnavailable, http.StatusBadRequest, "Room is not available for booking"},
	{commands.ErrPlanNotEligible, http.StatusForbidden, "Client plan does not include room booking"},
	{commands.ErrForbidden, http.StatusForbidden, "Cannot act on behalf of another client"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrClientNotFound, http.StatusNotFound, "Client not found"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, errorDetail(err))
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func errorDetail(err error) any {
	var conflict *reservation.ConflictError
	if errors.As(err, &conflict) {
		return gin.H{"conflictingReservationId": conflict.ReservationID}
	}
	var missing *reservation.MissingFieldError
	if errors.As(err, &missing) {
		return gin.H{"fields": missing.Fields}
	}
	return nil
}

var errForbiddenAccess = errors.New("reservation belongs to another client")

func respondForbidden(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusForbidden, errForbiddenAccess, "Insufficient permissions", nil)
}

var errMissingPrincipal = errors.New("no authenticated principal in context")
