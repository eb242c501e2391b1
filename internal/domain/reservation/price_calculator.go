package reservation

import (
	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/room"

	"github.com/shopspring/decimal"
)

// FullTierDiscountPercent is taken off the base price for full-plan clients.
const FullTierDiscountPercent = 20

var (
	minutesPerHour = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
)

type PriceCalculator interface {
	Calculate(rm *room.Room, slot TimeSlot, plan client.PlanTier) (Money, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) Calculate(rm *room.Room, slot TimeSlot, plan client.PlanTier) (Money, error) {
	return Price(rm.HourlyRate(), slot.Start(), slot.End(), plan)
}

// Price is hourlyRate × hours, less the full-tier discount. No rounding.
func Price(hourlyRate decimal.Decimal, start, end calendar.TimeOfDay, plan client.PlanTier) (Money, error) {
	if !start.Before(end) {
		return Money{}, ErrInvalidInterval
	}
	if hourlyRate.IsNegative() {
		return Money{}, ErrNegativePrice
	}

	minutes := decimal.NewFromInt(int64(start.MinutesUntil(end)))
	total := hourlyRate.Mul(minutes).Div(minutesPerHour)
	if plan == client.PlanFull {
		total = total.Mul(hundred.Sub(decimal.NewFromInt(FullTierDiscountPercent))).Div(hundred)
	}
	return NewMoney(total), nil
}
