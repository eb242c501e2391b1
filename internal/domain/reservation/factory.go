package reservation

import (
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	clientEntity *client.Client,
	slot TimeSlot,
	status Status,
	note Note,
) (*Reservation, error) {
	price, err := f.PriceCalculator.Calculate(roomEntity, slot, clientEntity.Plan())
	if err != nil {
		return nil, err
	}

	return NewReservation(
		uuid.NewString(),
		clientEntity.ID(),
		roomEntity.ID(),
		slot,
		status,
		price,
		note,
		f.Clock.Now(),
	)
}
