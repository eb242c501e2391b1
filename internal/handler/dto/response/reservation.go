package response

import (
	"encoding/json"
	"time"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"clientId"`
	ClientName string      `json:"clientName,omitempty"`
	RoomID     string      `json:"roomId"`
	RoomName   string      `json:"roomName"`
	Date       string      `json:"date"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	Status     string      `json:"status"`
	Notes      *string     `json:"notes,omitempty"`
	TotalValue json.Number `json:"totalValue" swaggertype:"number"`
	CreatedAt  string      `json:"createdAt"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}

// Money renders a decimal as a JSON number rounded to cents.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		RoomID:     v.RoomID,
		RoomName:   v.RoomName,
		Date:       v.Date,
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		Status:     v.Status.Display(),
		Notes:      v.Notes,
		TotalValue: Money(v.TotalValue),
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromReservationView(v))
	}
	return out
}

// CalendarEntryResponse leaves the client fields and totalValue empty on
// entries that belong to another client, unless the caller is an admin.
type CalendarEntryResponse struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"clientId,omitempty"`
	ClientName string      `json:"clientName,omitempty"`
	RoomID     string      `json:"roomId"`
	RoomName   string      `json:"roomName"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	Status     string      `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	TotalValue json.Number `json:"totalValue,omitempty" swaggertype:"number"`
}

type CalendarDayResponse struct {
	Date         string                   `json:"date"`
	InMonth      bool                     `json:"inMonth"`
	Reservations []*CalendarEntryResponse `json:"reservations"`
}

type CalendarResponse struct {
	View  string                 `json:"view"`
	Date  string                 `json:"date"`
	Days  []*CalendarDayResponse `json:"days"`
	Rooms []*RoomResponse        `json:"rooms"`
}

func FromCalendarView(v *queries.CalendarView) (*CalendarResponse, error) {
	days := make([]*CalendarDayResponse, 0, len(v.Days))
	for _, d := range v.Days {
		entries := make([]*CalendarEntryResponse, 0, len(d.Reservations))
		for _, e := range d.Reservations {
			entries = append(entries, fromCalendarEntry(e))
		}
		days = append(days, &CalendarDayResponse{
			Date:         d.Date.String(),
			InMonth:      d.InMonth,
			Reservations: entries,
		})
	}
	rooms, err := FromRoomViews(v.Rooms)
	if err != nil {
		return nil, err
	}
	return &CalendarResponse{
		View:  v.View.String(),
		Date:  v.Anchor.String(),
		Days:  days,
		Rooms: rooms,
	}, nil
}

// RedactForeign keeps the slot and status of reservations not owned by
// clientID and drops who booked them, their notes and their value.
func (r *CalendarResponse) RedactForeign(clientID string) {
	for _, d := range r.Days {
		for _, e := range d.Reservations {
			if e.ClientID == clientID {
				continue
			}
			e.ClientID = ""
			e.ClientName = ""
			e.Notes = ""
			e.TotalValue = ""
		}
	}
}

func fromCalendarEntry(e reservation.CalendarEntry) *CalendarEntryResponse {
	return &CalendarEntryResponse{
		ID:         e.ID,
		ClientID:   e.ClientID,
		ClientName: e.ClientName,
		RoomID:     e.RoomID,
		RoomName:   e.RoomName,
		StartTime:  e.Start.String(),
		EndTime:    e.End.String(),
		Status:     e.Status.Display(),
		Notes:      e.Notes,
		TotalValue: Money(e.TotalValue.Amount()),
	}
}
