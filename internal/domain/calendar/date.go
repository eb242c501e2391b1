package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"coworking-booking/internal/pkg/clock"
)

var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// CivilDate is a calendar day with no time-of-day and no zone attached.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateLike is anything exposing local calendar components. time.Time satisfies it.
type DateLike interface {
	Year() int
	Month() time.Month
	Day() int
}

func NewCivilDate(year int, month time.Month, day int) (CivilDate, error) {
	if month < time.January || month > time.December || day < 1 || day > daysIn(year, month) {
		return CivilDate{}, ErrInvalidDateFormat
	}
	return CivilDate{Year: year, Month: month, Day: day}, nil
}

func ParseCivilDate(wire string) (CivilDate, error) {
	m := dateRegex.FindStringSubmatch(wire)
	if m == nil {
		return CivilDate{}, ErrInvalidDateFormat
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewCivilDate(year, time.Month(month), day)
}

// CivilDateOf reads the components straight off the value so no offset
// conversion can move the day.
func CivilDateOf(d DateLike) CivilDate {
	return CivilDate{Year: d.Year(), Month: d.Month(), Day: d.Day()}
}

// Today returns the current civil date in loc.
func Today(c clock.Clock, loc *time.Location) CivilDate {
	if loc == nil {
		loc = time.Local
	}
	return CivilDateOf(c.Now().In(loc))
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CivilDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(d.proxy().AddDate(0, 0, n))
}

func (d CivilDate) Weekday() time.Weekday {
	return d.proxy().Weekday()
}

func (d CivilDate) Compare(other CivilDate) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d CivilDate) Before(other CivilDate) bool { return d.Compare(other) < 0 }
func (d CivilDate) After(other CivilDate) bool  { return d.Compare(other) > 0 }

// In returns midnight of d in loc.
func (d CivilDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d CivilDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CivilDate) UnmarshalText(b []byte) error {
	parsed, err := ParseCivilDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// arithmetic runs on UTC midnight so no DST rule can shift the components
func (d CivilDate) proxy() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
