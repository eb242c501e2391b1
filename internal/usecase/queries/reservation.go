package queries

import (
	"context"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=queries

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id string) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByDateRange(ctx context.Context, from, to calendar.CivilDate, roomID string) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id string) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	filter.Limit = ValidateLimit(filter.Limit)
	return q.repo.List(ctx, filter)
}

func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID string, limit int) ([]*ReservationView, error) {
	return q.List(ctx, ReservationFilter{ClientID: clientID, Limit: limit})
}
