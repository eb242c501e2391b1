package converter

import (
	"fmt"

	"coworking-booking/internal/domain/reservation"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		ClientID:        res.ClientID(),
		RoomID:          res.RoomID(),
		ReservationDate: pgconv.DateToPgtype(res.Date()),
		StartTime:       pgconv.TimeOfDayToPgtype(res.Start()),
		EndTime:         pgconv.TimeOfDayToPgtype(res.End()),
		Status:          res.Status().String(),
		Notes:           pgconv.OptionalText(res.Note().String()),
		TotalValue:      pgconv.DecimalToNumeric(res.Price().Amount()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToStatusParams(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		Notes:     pgconv.OptionalText(res.Note().String()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromInfra rebuilds the aggregate from a stored row. Stored data
// bypasses constructor validation, but unreadable columns are still errors.
func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	date, err := pgconv.DateFromPgtype(row.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	start, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return nil, fmt.Errorf("reservation %s start: %w", row.ID, err)
	}
	end, err := pgconv.TimeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return nil, fmt.Errorf("reservation %s end: %w", row.ID, err)
	}
	slot, err := reservation.NewTimeSlot(date, start, end)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	note := ""
	if row.Notes.Valid {
		note = row.Notes.String
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ClientID,
		row.RoomID,
		slot,
		status,
		reservation.NewMoney(total),
		reservation.NewNote(note),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
