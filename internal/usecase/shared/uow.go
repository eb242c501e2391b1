package shared

import (
	"context"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=shared

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
}

type CommandReads interface {
	RoomByID(ctx context.Context, id string) (*RoomSnapshot, error)
	ClientByID(ctx context.Context, id string) (*ClientSnapshot, error)
}

type ReservationRepository interface {
	// LockSlot serializes writers on one room and day until the transaction ends.
	LockSlot(ctx context.Context, roomID string, date calendar.CivilDate) error
	FindByRoomAndDate(ctx context.Context, roomID string, date calendar.CivilDate) ([]*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error)
	Insert(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id string) error
}
