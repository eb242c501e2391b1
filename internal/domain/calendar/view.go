package calendar

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidView = errors.New("view must be one of day, week, month")

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

func (v View) String() string {
	return string(v)
}

func (v View) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	default:
		return false
	}
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", ErrInvalidView
	}
	return v, nil
}

// GridRange returns the ordered days a view shows around anchor.
// Weeks start on Sunday; a month is padded out to whole weeks.
func GridRange(view View, anchor CivilDate) []CivilDate {
	var first, last CivilDate
	switch view {
	case ViewWeek:
		first = StartOfWeek(anchor)
		last = first.AddDays(6)
	case ViewMonth:
		first = StartOfWeek(CivilDate{Year: anchor.Year, Month: anchor.Month, Day: 1})
		last = EndOfWeek(CivilDate{Year: anchor.Year, Month: anchor.Month, Day: daysIn(anchor.Year, anchor.Month)})
	default:
		return []CivilDate{anchor}
	}

	days := make([]CivilDate, 0, 42)
	for d := first; !d.After(last); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func StartOfWeek(d CivilDate) CivilDate {
	return d.AddDays(-int(d.Weekday()))
}

func EndOfWeek(d CivilDate) CivilDate {
	return d.AddDays(int(time.Saturday - d.Weekday()))
}
