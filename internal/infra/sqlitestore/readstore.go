package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const reservationViewSelect = `SELECT r.id, r.client_id, c.name, r.room_id, rm.name,
       r.reservation_date, r.start_time, r.end_time, r.status, r.notes, r.total_value,
       r.created_at, r.updated_at
FROM reservations r
JOIN rooms rm ON rm.id = r.room_id
JOIN clients c ON c.id = r.client_id`

const roomSelect = `SELECT id, name, capacity, hourly_rate, amenities, available, area_m2 FROM rooms`

type ReservationReadStore struct {
	q queryer
}

func NewReservationReadStore(db *sql.DB) *ReservationReadStore {
	return &ReservationReadStore{q: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id string) (*queries.ReservationView, error) {
	row := r.q.QueryRowContext(ctx, reservationViewSelect+` WHERE r.id = ?`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	var (
		where []string
		args  []any
	)
	if filter.ClientID != "" {
		where = append(where, "r.client_id = ?")
		args = append(args, filter.ClientID)
	}
	if filter.RoomID != "" {
		where = append(where, "r.room_id = ?")
		args = append(args, filter.RoomID)
	}
	if filter.From != nil {
		where = append(where, "r.reservation_date >= ?")
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		where = append(where, "r.reservation_date <= ?")
		args = append(args, filter.To.String())
	}
	if filter.Status != nil {
		where = append(where, "r.status = ?")
		args = append(args, filter.Status.String())
	}

	query := reservationViewSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.reservation_date DESC, r.start_time ASC, r.id ASC LIMIT ?"
	args = append(args, queries.ValidateLimit(filter.Limit))

	views, err := r.queryViews(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, nil
}

// ListByDateRange includes cancelled reservations.
func (r *ReservationReadStore) ListByDateRange(ctx context.Context, from, to calendar.CivilDate, roomID string) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + ` WHERE r.reservation_date BETWEEN ? AND ?`
	args := []any{from.String(), to.String()}
	if roomID != "" {
		query += ` AND r.room_id = ?`
		args = append(args, roomID)
	}
	query += ` ORDER BY r.reservation_date ASC, r.start_time ASC, r.id ASC`

	views, err := r.queryViews(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date range", err)
	}
	return views, nil
}

func (r *ReservationReadStore) queryViews(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, view)
	}
	return result, rows.Err()
}

func scanReservationView(s scanner) (*queries.ReservationView, error) {
	var (
		id, clientID, clientName, roomID, roomName          string
		date, start, end, status, total, createdAt, updated string
		notes                                               sql.NullString
	)
	if err := s.Scan(&id, &clientID, &clientName, &roomID, &roomName,
		&date, &start, &end, &status, &notes, &total, &createdAt, &updated); err != nil {
		return nil, err
	}

	f, err := parseReservationFields(id, date, start, end, status, total, createdAt, updated)
	if err != nil {
		return nil, err
	}

	var notesPtr *string
	if notes.Valid {
		n := notes.String
		notesPtr = &n
	}

	return &queries.ReservationView{
		ID:         id,
		ClientID:   clientID,
		ClientName: clientName,
		RoomID:     roomID,
		RoomName:   roomName,
		Date:       f.date.String(),
		StartTime:  f.start.String(),
		EndTime:    f.end.String(),
		Status:     f.status,
		Notes:      notesPtr,
		TotalValue: f.total,
		CreatedAt:  f.createdAt,
		UpdatedAt:  f.updatedAt,
	}, nil
}

type RoomReadStore struct {
	q queryer
}

func NewRoomReadStore(db *sql.DB) *RoomReadStore {
	return &RoomReadStore{q: db}
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.q.QueryContext(ctx, roomSelect+` ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	result := make([]*queries.RoomView, 0)
	for rows.Next() {
		rm, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to convert room row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id string) (*queries.RoomView, error) {
	rm, err := scanRoom(r.q.QueryRowContext(ctx, roomSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

func scanRoom(s scanner) (*queries.RoomView, error) {
	var (
		rm        queries.RoomView
		rate      string
		amenities string
	)
	if err := s.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rate, &amenities, &rm.Available, &rm.AreaM2); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("room %s hourly_rate: %w", rm.ID, err)
	}
	rm.HourlyRate = d

	rm.Amenities = []string{}
	if amenities != "" {
		if err := json.Unmarshal([]byte(amenities), &rm.Amenities); err != nil {
			return nil, fmt.Errorf("room %s amenities: %w", rm.ID, err)
		}
	}
	return &rm, nil
}

type commandReads struct {
	q queryer
}

func (c *commandReads) RoomByID(ctx context.Context, id string) (*shared.RoomSnapshot, error) {
	rm, err := (&RoomReadStore{q: c.q}).FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.RoomSnapshot{
		ID:         rm.ID,
		Name:       rm.Name,
		Capacity:   rm.Capacity,
		HourlyRate: rm.HourlyRate,
		Amenities:  rm.Amenities,
		Available:  rm.Available,
		AreaM2:     rm.AreaM2,
	}, nil
}

func (c *commandReads) ClientByID(ctx context.Context, id string) (*shared.ClientSnapshot, error) {
	var cl shared.ClientSnapshot
	err := c.q.QueryRowContext(ctx,
		`SELECT id, name, email, phone, plan FROM clients WHERE id = ?`, id,
	).Scan(&cl.ID, &cl.Name, &cl.Email, &cl.Phone, &cl.Plan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}
	return &cl, nil
}
