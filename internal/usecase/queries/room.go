package queries

import (
	"context"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/mock_room.go -package=queries

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
	FindByID(ctx context.Context, id string) (*RoomView, error)
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	GetByID(ctx context.Context, id string) (*RoomView, error)
	Quote(ctx context.Context, roomID, startTime, endTime, plan string) (*Quote, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.repo.List(ctx)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id string) (*RoomView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return v, nil
}

// Quote prices a slot without booking it.
func (q *roomQueriesImpl) Quote(ctx context.Context, roomID, startTime, endTime, plan string) (*Quote, error) {
	start, err := calendar.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, errs.Mark(err, reservation.ErrInvalidInterval)
	}
	end, err := calendar.ParseTimeOfDay(endTime)
	if err != nil {
		return nil, errs.Mark(err, reservation.ErrInvalidInterval)
	}

	tier := client.PlanBasic
	if plan != "" {
		if tier, err = client.ParsePlanTier(plan); err != nil {
			return nil, err
		}
	}

	rm, err := q.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	total, err := reservation.Price(rm.HourlyRate, start, end, tier)
	if err != nil {
		return nil, err
	}

	return &Quote{RoomID: rm.ID, StartTime: start, EndTime: end, Plan: tier.String(), Total: total}, nil
}
