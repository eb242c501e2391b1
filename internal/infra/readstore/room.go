package readstore

import (
	"context"

	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/readstore/mock_room.go -package=readstore

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.GetRoomByIDRow, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListRoomsRow, error)
}

type ClientReadQueries interface {
	GetClientByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.GetClientByIDRow, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		view, convErr := rowToRoomView(sqlc.GetRoomByIDRow(row))
		if convErr != nil {
			return nil, infra.WrapRepoErr("failed to convert room row", convErr)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id string) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	view, err := rowToRoomView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room row", err)
	}
	return view, nil
}

func rowToRoomView(row sqlc.GetRoomByIDRow) (*queries.RoomView, error) {
	rate, err := pgconv.DecimalFromNumeric(row.HourlyRate)
	if err != nil {
		return nil, err
	}
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &queries.RoomView{
		ID:         row.ID,
		Name:       row.Name,
		Capacity:   int(row.Capacity),
		HourlyRate: rate,
		Amenities:  amenities,
		Available:  row.Available,
		AreaM2:     int(row.AreaM2),
	}, nil
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id string) (*shared.ClientSnapshot, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}

	return &shared.ClientSnapshot{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Phone: row.Phone,
		Plan:  row.Plan,
	}, nil
}
