package readstore

import (
	"context"
	"fmt"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/mock_reservation.go -package=readstore

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error)
	ListReservationViewsByDateRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsByDateRangeParams) ([]sqlc.ListReservationViewsByDateRangeRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := rowToReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationViewsParams{
		ClientID: pgconv.OptionalText(filter.ClientID),
		RoomID:   pgconv.OptionalText(filter.RoomID),
		FromDate: pgconv.DatePtrToPgtype(filter.From),
		ToDate:   pgconv.DatePtrToPgtype(filter.To),
		RowLimit: int32(queries.ValidateLimit(filter.Limit)), // #nosec G115 -- bounded by MaxListLimit
	}
	if filter.Status != nil {
		params.Status = pgconv.OptionalText(filter.Status.String())
	}

	rows, err := r.queries.ListReservationViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, convErr := rowToReservationView(sqlc.GetReservationViewByIDRow(row))
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", convErr)
		}
		result = append(result, view)
	}
	return result, nil
}

// ListByDateRange returns every reservation dated within [from, to],
// cancelled ones included, optionally narrowed to one room.
func (r *ReservationReadStore) ListByDateRange(ctx context.Context, from, to calendar.CivilDate, roomID string) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByDateRange(ctx, r.db, sqlc.ListReservationViewsByDateRangeParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
		RoomID:   pgconv.OptionalText(roomID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date range", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, convErr := rowToReservationView(sqlc.GetReservationViewByIDRow(row))
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation row", convErr)
		}
		result = append(result, view)
	}
	return result, nil
}

// The list rows share this shape and convert to it directly.
func rowToReservationView(row sqlc.GetReservationViewByIDRow) (*queries.ReservationView, error) {
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
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return &queries.ReservationView{
		ID:         row.ID,
		ClientID:   row.ClientID,
		ClientName: row.ClientName,
		RoomID:     row.RoomID,
		RoomName:   row.RoomName,
		Date:       date.String(),
		StartTime:  start.String(),
		EndTime:    end.String(),
		Status:     status,
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		TotalValue: total,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
