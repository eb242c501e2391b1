//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDate(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2025-06-15"} {
			d, err := calendar.ParseCivilDate(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, d.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{
			"", "2024-1-01", "15/03/2024", "2024-03-15T10:00:00Z", "2024-13-01",
			"2024-02-30", "2023-02-29", "2024-00-10", " 2024-03-15",
		} {
			_, err := calendar.ParseCivilDate(s)
			assert.ErrorIs(t, err, calendar.ErrInvalidDateFormat, s)
		}
	})

	t.Run("unmarshal text", func(t *testing.T) {
		var d calendar.CivilDate
		require.NoError(t, d.UnmarshalText([]byte("2024-03-15")))
		assert.Equal(t, calendar.CivilDate{Year: 2024, Month: time.March, Day: 15}, d)
	})
}

func TestCivilDateOf(t *testing.T) {
	t.Run("reads local components regardless of offset", func(t *testing.T) {
		saoPaulo := time.FixedZone("BRT", -3*60*60)
		// 23:30 local is already the next day in UTC
		local := time.Date(2024, time.March, 15, 23, 30, 0, 0, saoPaulo)
		assert.Equal(t, "2024-03-15", calendar.CivilDateOf(local).String())
		assert.Equal(t, "2024-03-16", calendar.CivilDateOf(local.UTC()).String())
	})

	t.Run("today uses the business zone", func(t *testing.T) {
		saoPaulo := time.FixedZone("BRT", -3*60*60)
		c := clock.NewMockClock(time.Date(2024, time.March, 16, 1, 0, 0, 0, time.UTC))
		assert.Equal(t, "2024-03-15", calendar.Today(c, saoPaulo).String())
		assert.Equal(t, "2024-03-16", calendar.Today(c, time.UTC).String())
	})
}

func TestCivilDateArithmetic(t *testing.T) {
	d, err := calendar.ParseCivilDate("2024-02-28")
	require.NoError(t, err)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-01-31", d.AddDays(-28).String())
	assert.Equal(t, time.Wednesday, d.Weekday())

	other := d.AddDays(1)
	assert.True(t, d.Before(other))
	assert.True(t, other.After(d))
	assert.Equal(t, 0, d.Compare(d))
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:00", "09:30", "23:30"} {
			tod, err := calendar.ParseTimeOfDay(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, tod.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "9:00", "09:15", "24:00", "09:60", "0900", "09:00:00"} {
			_, err := calendar.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, calendar.ErrInvalidTimeOfDay, s)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		a := calendar.MustTimeOfDay("09:00")
		b := calendar.MustTimeOfDay("10:30")
		assert.True(t, a.Before(b))
		assert.True(t, b.After(a))
		assert.Equal(t, 90, a.MinutesUntil(b))
		assert.Equal(t, 540, a.Minutes())
	})
}

func TestGridRange(t *testing.T) {
	mustDate := func(s string) calendar.CivilDate {
		d, err := calendar.ParseCivilDate(s)
		require.NoError(t, err)
		return d
	}

	t.Run("day", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewDay, mustDate("2024-03-15"))
		require.Len(t, days, 1)
		assert.Equal(t, "2024-03-15", days[0].String())
	})

	t.Run("week starts on sunday", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewWeek, mustDate("2024-03-15"))
		require.Len(t, days, 7)
		assert.Equal(t, "2024-03-10", days[0].String())
		assert.Equal(t, "2024-03-16", days[6].String())
		assert.Equal(t, time.Sunday, days[0].Weekday())
	})

	t.Run("week anchored on sunday", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewWeek, mustDate("2024-03-10"))
		assert.Equal(t, "2024-03-10", days[0].String())
	})

	t.Run("month pads to whole weeks", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewMonth, mustDate("2024-03-15"))
		assert.Equal(t, "2024-02-25", days[0].String())
		assert.Equal(t, "2024-04-06", days[len(days)-1].String())
		assert.Len(t, days, 42)
		assert.Zero(t, len(days)%7)
	})

	t.Run("month that starts on sunday", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewMonth, mustDate("2024-09-01"))
		assert.Equal(t, "2024-09-01", days[0].String())
		assert.Equal(t, "2024-10-05", days[len(days)-1].String())
		assert.Len(t, days, 35)
	})

	t.Run("february in a non leap year fitting four weeks", func(t *testing.T) {
		days := calendar.GridRange(calendar.ViewMonth, mustDate("2015-02-10"))
		assert.Len(t, days, 28)
	})
}

func TestParseView(t *testing.T) {
	v, err := calendar.ParseView("Month")
	require.NoError(t, err)
	assert.Equal(t, calendar.ViewMonth, v)

	_, err = calendar.ParseView("year")
	assert.ErrorIs(t, err, calendar.ErrInvalidView)
}
