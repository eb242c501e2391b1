package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/infra"

	"github.com/shopspring/decimal"
)

const reservationColumns = `id, client_id, room_id, reservation_date, start_time, end_time, status, notes, total_value, created_at, updated_at`

type reservationRepository struct {
	q queryer
}

// LockSlot is a no-op: the handle has a single connection, so transactions
// never interleave.
func (r *reservationRepository) LockSlot(context.Context, string, calendar.CivilDate) error {
	return nil
}

func (r *reservationRepository) FindByRoomAndDate(ctx context.Context, roomID string, date calendar.CivilDate) ([]*reservation.Reservation, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = ? AND reservation_date = ? AND status <> 'cancelled'
		ORDER BY start_time ASC, id ASC`,
		roomID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by room and date", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", scanErr)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}
	return res, nil
}

func (r *reservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO reservations (`+reservationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID(),
		res.ClientID(),
		res.RoomID(),
		res.Date().String(),
		res.Start().String(),
		res.End().String(),
		res.Status().String(),
		nullableNote(res.Note()),
		res.Price().Amount().String(),
		formatTimestamp(res.CreatedAt()),
		formatTimestamp(res.UpdatedAt()),
	)
	if err != nil {
		return classifyErr("failed to insert reservation", err)
	}
	return nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE reservations SET status = ?, notes = ?, updated_at = ? WHERE id = ?`,
		res.Status().String(), nullableNote(res.Note()), formatTimestamp(res.UpdatedAt()), res.ID())
	if err != nil {
		return classifyErr("failed to update reservation status", err)
	}
	return expectOneRow(result, "reservation not found")
}

func (r *reservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return classifyErr("failed to delete reservation", err)
	}
	return expectOneRow(result, "reservation not found")
}

func expectOneRow(result sql.Result, notFoundMsg string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return infra.WrapRepoErr("failed to read affected rows", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(notFoundMsg, nil, infra.KindNotFound)
	}
	return nil
}

func nullableNote(n reservation.Note) sql.NullString {
	if n.IsEmpty() {
		return sql.NullString{}
	}
	return sql.NullString{String: n.String(), Valid: true}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(s scanner) (*reservation.Reservation, error) {
	var (
		id, clientID, roomID, date, start, end, status, total, createdAt, updatedAt string
		notes                                                                       sql.NullString
	)
	if err := s.Scan(&id, &clientID, &roomID, &date, &start, &end, &status, &notes, &total, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	fields, err := parseReservationFields(id, date, start, end, status, total, createdAt, updatedAt)
	if err != nil {
		return nil, err
	}
	slot, err := reservation.NewTimeSlot(fields.date, fields.start, fields.end)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", id, err)
	}

	return reservation.ReconstructReservation(
		id,
		clientID,
		roomID,
		slot,
		fields.status,
		reservation.NewMoney(fields.total),
		reservation.NewNote(notes.String),
		fields.createdAt,
		fields.updatedAt,
	), nil
}

type reservationFields struct {
	date      calendar.CivilDate
	start     calendar.TimeOfDay
	end       calendar.TimeOfDay
	status    reservation.Status
	total     decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

func parseReservationFields(id, date, start, end, status, total, createdAt, updatedAt string) (reservationFields, error) {
	var f reservationFields
	var err error
	if f.date, err = calendar.ParseCivilDate(date); err != nil {
		return f, fmt.Errorf("reservation %s: %w", id, err)
	}
	if f.start, err = calendar.ParseTimeOfDay(start); err != nil {
		return f, fmt.Errorf("reservation %s start: %w", id, err)
	}
	if f.end, err = calendar.ParseTimeOfDay(end); err != nil {
		return f, fmt.Errorf("reservation %s end: %w", id, err)
	}
	if f.status, err = reservation.ParseStatus(status); err != nil {
		return f, fmt.Errorf("reservation %s: %w", id, err)
	}
	if f.total, err = decimal.NewFromString(total); err != nil {
		return f, fmt.Errorf("reservation %s total: %w", id, err)
	}
	if f.createdAt, err = parseTimestamp(createdAt); err != nil {
		return f, fmt.Errorf("reservation %s created_at: %w", id, err)
	}
	if f.updatedAt, err = parseTimestamp(updatedAt); err != nil {
		return f, fmt.Errorf("reservation %s updated_at: %w", id, err)
	}
	return f, nil
}
