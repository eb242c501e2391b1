//go:build unit

package reservation_test

import (
	"fmt"
	"testing"

	"coworking-booking/internal/domain/calendar"
	"coworking-booking/internal/domain/reservation"
	"coworking-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasConflict(t *testing.T) {
	date, err := calendar.ParseCivilDate("2024-12-20")
	require.NoError(t, err)
	tod := calendar.MustTimeOfDay

	existing := []*reservation.Reservation{
		builder.NewReservationBuilder().WithID("a").WithSlot("09:00", "10:00").AsConfirmed().MustBuild(),
		builder.NewReservationBuilder().WithID("b").WithSlot("13:00", "16:00").MustBuild(),
		builder.NewReservationBuilder().WithID("c").WithSlot("17:00", "18:00").AsCancelled().MustBuild(),
		builder.NewReservationBuilder().WithID("d").WithSlot("18:00", "19:00").WithRoomID("sala-2").MustBuild(),
		builder.NewReservationBuilder().WithID("e").WithSlot("19:00", "20:00").WithDate("2024-12-21").MustBuild(),
	}

	cases := []struct {
		name       string
		start, end string
		exclude    string
		want       bool
	}{
		{name: "back to back after", start: "10:00", end: "11:00"},
		{name: "back to back before", start: "08:00", end: "09:00"},
		{name: "same interval", start: "09:00", end: "10:00", want: true},
		{name: "overlaps start", start: "08:30", end: "09:30", want: true},
		{name: "overlaps end", start: "09:30", end: "10:30", want: true},
		{name: "contained", start: "14:00", end: "15:00", want: true},
		{name: "contains", start: "12:30", end: "16:30", want: true},
		{name: "cancelled is ignored", start: "17:00", end: "18:00"},
		{name: "other room is ignored", start: "18:00", end: "19:00"},
		{name: "other date is ignored", start: "19:00", end: "20:00"},
		{name: "excluded reservation is ignored", start: "09:00", end: "10:00", exclude: "a"},
		{name: "exclude does not hide others", start: "09:30", end: "13:30", exclude: "a", want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := reservation.HasConflict(existing, "sala-1", date, tod(c.start), tod(c.end), c.exclude)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFindConflict(t *testing.T) {
	date, _ := calendar.ParseCivilDate("2024-12-20")
	existing := []*reservation.Reservation{
		builder.NewReservationBuilder().WithID("held").WithSlot("09:00", "12:00").MustBuild(),
	}

	got := reservation.FindConflict(existing, "sala-1", date, calendar.MustTimeOfDay("10:00"), calendar.MustTimeOfDay("11:00"), "")
	require.NotNil(t, got)
	assert.Equal(t, "held", got.ID())

	assert.Nil(t, reservation.FindConflict(nil, "sala-1", date, calendar.MustTimeOfDay("10:00"), calendar.MustTimeOfDay("11:00"), ""))
}

func TestHasConflictDisjointSet(t *testing.T) {
	date, _ := calendar.ParseCivilDate("2024-12-20")

	// every half hour from 08:00 to 20:00, pairwise disjoint
	var set []*reservation.Reservation
	for m := 8 * 60; m < 20*60; m += 60 {
		start := fmt.Sprintf("%02d:%02d", m/60, m%60)
		end := fmt.Sprintf("%02d:%02d", (m+30)/60, (m+30)%60)
		set = append(set, builder.NewReservationBuilder().WithID(start).WithSlot(start, end).MustBuild())
	}

	for _, r := range set {
		assert.False(t, reservation.HasConflict(set, "sala-1", date, r.Start(), r.End(), r.ID()), r.ID())
		assert.True(t, reservation.HasConflict(set, "sala-1", date, r.Start(), r.End(), ""), r.ID())
	}

	// the gaps between them are free
	assert.False(t, reservation.HasConflict(set, "sala-1", date, calendar.MustTimeOfDay("08:30"), calendar.MustTimeOfDay("09:00"), ""))
	assert.True(t, reservation.HasConflict(set, "sala-1", date, calendar.MustTimeOfDay("08:30"), calendar.MustTimeOfDay("09:30"), ""))
}
