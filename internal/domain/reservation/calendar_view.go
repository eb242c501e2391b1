package reservation

import (
	"sort"

	"coworking-booking/internal/domain/calendar"
)

// DateValue is a reservation date as it arrived, either a "YYYY-MM-DD"
// string or a date-like value. Both resolve through the same civil rules.
type DateValue struct {
	wire string
	like calendar.DateLike
}

func DateFromString(s string) DateValue {
	return DateValue{wire: s}
}

func DateFromValue(d calendar.DateLike) DateValue {
	return DateValue{like: d}
}

func DateFromCivil(d calendar.CivilDate) DateValue {
	return DateValue{wire: d.String()}
}

func (v DateValue) Civil() (calendar.CivilDate, error) {
	if v.like != nil {
		return calendar.CivilDateOf(v.like), nil
	}
	return calendar.ParseCivilDate(v.wire)
}

type CalendarEntry struct {
	ID         string
	ClientID   string
	ClientName string
	RoomID     string
	RoomName   string
	Date       DateValue
	Start      calendar.TimeOfDay
	End        calendar.TimeOfDay
	Status     Status
	TotalValue Money
	Notes      string
}

func EntryFromReservation(r *Reservation) CalendarEntry {
	return CalendarEntry{
		ID:         r.ID(),
		ClientID:   r.ClientID(),
		RoomID:     r.RoomID(),
		Date:       DateFromCivil(r.Date()),
		Start:      r.Start(),
		End:        r.End(),
		Status:     r.Status(),
		TotalValue: r.Price(),
		Notes:      r.Note().String(),
	}
}

// Project buckets entries into the days of the view around anchor. Entries
// outside the grid or with an unreadable date are left out. Buckets are
// ordered by start then id. The input slice is not modified.
func Project(entries []CalendarEntry, view calendar.View, anchor calendar.CivilDate) map[calendar.CivilDate][]CalendarEntry {
	grid := calendar.GridRange(view, anchor)
	buckets := make(map[calendar.CivilDate][]CalendarEntry, len(grid))
	if len(grid) == 0 {
		return buckets
	}
	first, last := grid[0], grid[len(grid)-1]

	for _, e := range entries {
		d, err := e.Date.Civil()
		if err != nil {
			continue
		}
		if d.Before(first) || d.After(last) {
			continue
		}
		buckets[d] = append(buckets[d], e)
	}

	for d := range buckets {
		sortEntries(buckets[d])
	}
	return buckets
}

func sortEntries(entries []CalendarEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Start.Equal(entries[j].Start) {
			return entries[i].Start.Before(entries[j].Start)
		}
		return entries[i].ID < entries[j].ID
	})
}
