package reservation

import (
	"time"

	"coworking-booking/internal/domain/calendar"
)

type Reservation struct {
	id        string
	clientID  string
	roomID    string
	slot      TimeSlot
	status    Status
	price     Money
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	id, clientID, roomID string,
	slot TimeSlot,
	status Status,
	price Money,
	note Note,
	now time.Time,
) (*Reservation, error) {
	if id == "" || clientID == "" || roomID == "" {
		return nil, ErrMissingField
	}
	if status != StatusPending && status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	if price.Amount().IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:        id,
		clientID:  clientID,
		roomID:    roomID,
		slot:      slot,
		status:    status,
		price:     price,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, clientID, roomID string,
	slot TimeSlot,
	status Status,
	price Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		clientID:  clientID,
		roomID:    roomID,
		slot:      slot,
		status:    status,
		price:     price,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) UpdateNote(note Note, now time.Time) {
	r.note = note
	r.updatedAt = now
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() string                { return r.id }
func (r *Reservation) ClientID() string          { return r.clientID }
func (r *Reservation) RoomID() string            { return r.roomID }
func (r *Reservation) TimeSlot() TimeSlot        { return r.slot }
func (r *Reservation) Date() calendar.CivilDate  { return r.slot.date }
func (r *Reservation) Start() calendar.TimeOfDay { return r.slot.start }
func (r *Reservation) End() calendar.TimeOfDay   { return r.slot.end }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) Price() Money              { return r.price }
func (r *Reservation) Note() Note                { return r.note }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
