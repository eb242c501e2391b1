//go:build unit || e2e

package builder

import (
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         string
	ClientID   string
	RoomID     string
	Date       string
	StartTime  string
	EndTime    string
	Status     reservation.Status
	Notes      string
	TotalValue string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.NewString(),
		ClientID:   "maria",
		RoomID:     "sala-1",
		Date:       "2024-12-20",
		StartTime:  "09:00",
		EndTime:    "11:00",
		Status:     reservation.StatusPending,
		Notes:      "Reunião com cliente",
		TotalValue: "160",
		CreatedAt:  time.Date(2024, time.December, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := r.slot()
	if err != nil {
		return nil, err
	}
	price, err := reservation.MoneyFromString(r.TotalValue)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		r.ID, r.ClientID, r.RoomID, slot, r.Status, price,
		reservation.NewNote(r.Notes), r.CreatedAt, r.CreatedAt,
	), nil
}

func (r *ReservationBuilder) MustBuild() *reservation.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) slot() (reservation.TimeSlot, error) {
	date, err := calendar.ParseCivilDate(r.Date)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	start, err := calendar.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	end, err := calendar.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlot(date, start, end)
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id string) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithRoomID(roomID string) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithClientID(clientID string) *ReservationBuilder {
	r.ClientID = clientID
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithSlot(start, end string) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	r.Notes = notes
	return r
}

func (r *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	r.Status = reservation.StatusConfirmed
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = reservation.StatusCancelled
	return r
}
