//go:build unit

package reservation_test

import (
	"testing"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	tod := calendar.MustTimeOfDay
	rate := decimal.NewFromInt(80)

	cases := []struct {
		name       string
		rate       decimal.Decimal
		start, end string
		plan       client.PlanTier
		want       string
	}{
		{name: "basic two hours", rate: rate, start: "09:00", end: "11:00", plan: client.PlanBasic, want: "160.00"},
		{name: "full two hours", rate: rate, start: "09:00", end: "11:00", plan: client.PlanFull, want: "128.00"},
		{name: "fiscal pays base", rate: rate, start: "09:00", end: "11:00", plan: client.PlanFiscal, want: "160.00"},
		{name: "half hour", rate: decimal.NewFromInt(120), start: "14:00", end: "14:30", plan: client.PlanBasic, want: "60.00"},
		{name: "fractional rate full tier", rate: decimal.RequireFromString("33.33"), start: "09:00", end: "09:30", plan: client.PlanFull, want: "13.33"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := reservation.Price(c.rate, tod(c.start), tod(c.end), c.plan)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Display())
		})
	}

	t.Run("keeps full precision", func(t *testing.T) {
		got, err := reservation.Price(decimal.RequireFromString("33.33"), tod("09:00"), tod("09:30"), client.PlanFull)
		require.NoError(t, err)
		assert.True(t, got.Amount().Equal(decimal.RequireFromString("13.332")), got.String())
	})

	t.Run("invalid interval", func(t *testing.T) {
		_, err := reservation.Price(rate, tod("11:00"), tod("11:00"), client.PlanBasic)
		assert.ErrorIs(t, err, reservation.ErrInvalidInterval)

		_, err = reservation.Price(rate, tod("11:00"), tod("09:00"), client.PlanBasic)
		assert.ErrorIs(t, err, reservation.ErrInvalidInterval)
	})
}

func TestDefaultPriceCalculator(t *testing.T) {
	rm := builder.NewRoomBuilder().WithHourlyRate("80").MustBuild()
	date, _ := calendar.ParseCivilDate("2024-12-20")
	slot, err := reservation.NewTimeSlot(date, calendar.MustTimeOfDay("09:00"), calendar.MustTimeOfDay("11:00"))
	require.NoError(t, err)

	got, err := reservation.NewDefaultPriceCalculator().Calculate(rm, slot, client.PlanFull)
	require.NoError(t, err)
	assert.Equal(t, "128.00", got.Display())
}
