package queries

import (
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ReservationView is the read model shared by queries and command results.
// Date stays in its "YYYY-MM-DD" wire form.
type ReservationView struct {
	ID         string
	ClientID   string
	ClientName string
	RoomID     string
	RoomName   string
	Date       string
	StartTime  string
	EndTime    string
	Status     reservation.Status
	Notes      *string
	TotalValue decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RoomView struct {
	ID         string
	Name       string
	Capacity   int
	HourlyRate decimal.Decimal
	Amenities  []string
	Available  bool
	AreaM2     int
}

type ReservationFilter struct {
	ClientID string
	RoomID   string
	From     *calendar.CivilDate
	To       *calendar.CivilDate
	Status   *reservation.Status
	Limit    int
}

type CalendarDay struct {
	Date         calendar.CivilDate
	InMonth      bool
	Reservations []reservation.CalendarEntry
}

type CalendarView struct {
	View   calendar.View
	Anchor calendar.CivilDate
	Days   []CalendarDay
	Rooms  []*RoomView
}

type Quote struct {
	RoomID    string
	StartTime calendar.TimeOfDay
	EndTime   calendar.TimeOfDay
	Plan      string
	Total     reservation.Money
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func NewReservationView(r *reservation.Reservation, roomName, clientName string) *ReservationView {
	var notes *string
	if !r.Note().IsEmpty() {
		n := r.Note().String()
		notes = &n
	}
	return &ReservationView{
		ID:         r.ID(),
		ClientID:   r.ClientID(),
		ClientName: clientName,
		RoomID:     r.RoomID(),
		RoomName:   roomName,
		Date:       r.Date().String(),
		StartTime:  r.Start().String(),
		EndTime:    r.End().String(),
		Status:     r.Status(),
		Notes:      notes,
		TotalValue: r.Price().Amount(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

// ToCalendarEntry keeps the date in wire form; the projector normalizes it.
func (v *ReservationView) ToCalendarEntry() (reservation.CalendarEntry, error) {
	start, err := calendar.ParseTimeOfDay(v.StartTime)
	if err != nil {
		return reservation.CalendarEntry{}, err
	}
	end, err := calendar.ParseTimeOfDay(v.EndTime)
	if err != nil {
		return reservation.CalendarEntry{}, err
	}
	notes := ""
	if v.Notes != nil {
		notes = *v.Notes
	}
	return reservation.CalendarEntry{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		Date:       reservation.DateFromString(v.Date),
		Start:      start,
		End:        end,
		Status:     v.Status,
		TotalValue: reservation.NewMoney(v.TotalValue),
		Notes:      notes,
	}, nil
}
