package reservation

import (
	"coworking-booking/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

type TimeSlot struct {
	date  calendar.CivilDate
	start calendar.TimeOfDay
	end   calendar.TimeOfDay
}

func NewTimeSlot(date calendar.CivilDate, start, end calendar.TimeOfDay) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidInterval
	}
	return TimeSlot{date: date, start: start, end: end}, nil
}

func (ts TimeSlot) Date() calendar.CivilDate  { return ts.date }
func (ts TimeSlot) Start() calendar.TimeOfDay { return ts.start }
func (ts TimeSlot) End() calendar.TimeOfDay   { return ts.end }

func (ts TimeSlot) DurationMinutes() int {
	return ts.start.MinutesUntil(ts.end)
}

// Overlaps treats both slots as half-open [start, end).
func (ts TimeSlot) Overlaps(start, end calendar.TimeOfDay) bool {
	return ts.start.Before(end) && start.Before(ts.end)
}

type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d}, nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Display rounds to cents. The stored amount keeps full precision.
func (m Money) Display() string {
	return m.amount.StringFixed(2)
}

func (m Money) String() string {
	return m.amount.String()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
