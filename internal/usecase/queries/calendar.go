package queries

import (
	"context"
	"log/slog"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/mock_calendar.go -package=queries

type CalendarQueries interface {
	Calendar(ctx context.Context, view calendar.View, anchor calendar.CivilDate, roomID string) (*CalendarView, error)
}

type calendarQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
	logger       *slog.Logger
}

func NewCalendarQueries(reservations ReservationReadStore, rooms RoomReadStore, logger *slog.Logger) CalendarQueries {
	return &calendarQueriesImpl{reservations: reservations, rooms: rooms, logger: logger}
}

func (q *calendarQueriesImpl) Calendar(ctx context.Context, view calendar.View, anchor calendar.CivilDate, roomID string) (*CalendarView, error) {
	if !view.IsValid() {
		return nil, calendar.ErrInvalidView
	}

	grid := calendar.GridRange(view, anchor)
	rows, err := q.reservations.ListByDateRange(ctx, grid[0], grid[len(grid)-1], roomID)
	if err != nil {
		return nil, err
	}

	rooms, err := q.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	roomNames := make(map[string]string, len(rooms))
	for _, rm := range rooms {
		roomNames[rm.ID] = rm.Name
	}

	entries := make([]reservation.CalendarEntry, 0, len(rows))
	for _, row := range rows {
		e, convErr := row.ToCalendarEntry()
		if convErr != nil {
			q.logger.Warn("skipping unreadable reservation", "reservation_id", row.ID, "error", convErr.Error())
			continue
		}
		if e.RoomName == "" {
			e.RoomName = roomNames[e.RoomID]
		}
		entries = append(entries, e)
	}

	buckets := reservation.Project(entries, view, anchor)

	days := make([]CalendarDay, 0, len(grid))
	for _, d := range grid {
		day := CalendarDay{
			Date:         d,
			InMonth:      view != calendar.ViewMonth || d.Month == anchor.Month,
			Reservations: buckets[d],
		}
		if day.Reservations == nil {
			day.Reservations = []reservation.CalendarEntry{}
		}
		days = append(days, day)
	}

	return &CalendarView{View: view, Anchor: anchor, Days: days, Rooms: rooms}, nil
}
