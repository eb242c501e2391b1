package reservation

import (
	"errors"
	"strings"
)

var (
	ErrMissingField       = errors.New("required field missing")
	ErrInvalidInterval    = errors.New("end time must be after start time")
	ErrPastDate           = errors.New("reservation date is in the past")
	ErrSchedulingConflict = errors.New("room is already booked for this time")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// ConflictError names the reservation that already holds the slot.
type ConflictError struct {
	ReservationID string
}

func (e *ConflictError) Error() string {
	return ErrSchedulingConflict.Error() + ": held by " + e.ReservationID
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}

// MissingFieldError lists the absent request fields.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingField.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
