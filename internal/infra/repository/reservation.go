package repository

import (
	"context"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/repository/converter"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	LockRoomDay(ctx context.Context, db sqlc.DBTX, arg sqlc.LockRoomDayParams) error
	ListReservationsByRoomAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByRoomAndDateParams) ([]sqlc.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Reservations, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
}

// ReservationRepository is bound to one transaction by the unit of work.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// LockSlot takes a transaction-scoped advisory lock on (room, date).
func (r *ReservationRepository) LockSlot(ctx context.Context, roomID string, date calendar.CivilDate) error {
	err := r.queries.LockRoomDay(ctx, r.db, sqlc.LockRoomDayParams{
		RoomID:          roomID,
		ReservationDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lock room day", err)
	}
	return nil
}

func (r *ReservationRepository) FindByRoomAndDate(ctx context.Context, roomID string, date calendar.CivilDate) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByRoomAndDate(ctx, r.db, sqlc.ListReservationsByRoomAndDateParams{
		RoomID:          roomID,
		ReservationDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for room day", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, convErr := converter.ReservationFromInfra(row)
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", convErr)
		}
		result = append(result, res)
	}
	return result, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err)
	}
	return res, nil
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToInfra(res)); err != nil {
		return classifyWriteErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, converter.ReservationToStatusParams(res))
	if err != nil {
		return classifyWriteErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func classifyWriteErr(msg string, err error) error {
	switch pgconv.PgErrorCode(err) {
	case pgconv.PgErrExclusionViolation:
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	case pgconv.PgErrUniqueViolation:
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.PgErrForeignKeyViolation:
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
