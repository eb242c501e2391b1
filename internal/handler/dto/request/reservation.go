package request

import (
	"strings"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
)

// CreateReservationRequest leaves presence checks to the use case so a
// missing-field error can list every absent field.
type CreateReservationRequest struct {
	ClientID  string  `json:"clientId"`
	RoomID    string  `json:"roomId"`
	Date      string  `json:"date" example:"2024-12-20"`
	StartTime string  `json:"startTime" example:"09:00"`
	EndTime   string  `json:"endTime" example:"11:00"`
	Notes     *string `json:"notes,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:  r.ClientID,
		RoomID:    r.RoomID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

type ChangeStatusRequest struct {
	Status string  `json:"status" example:"confirmed"`
	Notes  *string `json:"notes,omitempty"`
}

func (r ChangeStatusRequest) ToInput() commands.ChangeStatusInput {
	return commands.ChangeStatusInput{Status: r.Status, Notes: r.Notes}
}

type ListReservationsQuery struct {
	ClientID string `form:"clientId"`
	RoomID   string `form:"roomId"`
	From     string `form:"from"`
	To       string `form:"to"`
	Status   string `form:"status"`
	Limit    int    `form:"limit"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	filter := queries.ReservationFilter{
		ClientID: strings.TrimSpace(q.ClientID),
		RoomID:   strings.TrimSpace(q.RoomID),
		Limit:    q.Limit,
	}
	if q.From != "" {
		from, err := calendar.ParseCivilDate(q.From)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := calendar.ParseCivilDate(q.To)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		filter.To = &to
	}
	if q.Status != "" {
		st, err := reservation.ParseStatus(q.Status)
		if err != nil {
			return queries.ReservationFilter{}, err
		}
		filter.Status = &st
	}
	return filter, nil
}

type CalendarQuery struct {
	View   string `form:"view"`
	Date   string `form:"date"`
	RoomID string `form:"roomId"`
}

// Parse defaults to the month view; the anchor date is required.
func (q CalendarQuery) Parse() (calendar.View, calendar.CivilDate, error) {
	view := calendar.ViewMonth
	if q.View != "" {
		v, err := calendar.ParseView(q.View)
		if err != nil {
			return "", calendar.CivilDate{}, err
		}
		view = v
	}
	anchor, err := calendar.ParseCivilDate(strings.TrimSpace(q.Date))
	if err != nil {
		return "", calendar.CivilDate{}, err
	}
	return view, anchor, nil
}

type QuoteQuery struct {
	StartTime string `form:"startTime" binding:"required"`
	EndTime   string `form:"endTime" binding:"required"`
	Plan      string `form:"plan"`
}
