package room

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomID     = errors.New("room id cannot be empty")
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrNegativeRate    = errors.New("hourly rate cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
)

const MaxRoomNameLength = 255

type Room struct {
	id         string
	name       string
	capacity   int
	hourlyRate decimal.Decimal
	amenities  []string
	available  bool
	areaM2     int
}

func NewRoom(id, name string, capacity int, hourlyRate decimal.Decimal, amenities []string, available bool, areaM2 int) (*Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyRoomID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hourlyRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:         id,
		name:       name,
		capacity:   capacity,
		hourlyRate: hourlyRate,
		amenities:  append([]string(nil), amenities...),
		available:  available,
		areaM2:     areaM2,
	}, nil
}

// ReconstructRoom rebuilds a room from storage without validation.
func ReconstructRoom(id, name string, capacity int, hourlyRate decimal.Decimal, amenities []string, available bool, areaM2 int) *Room {
	return &Room{
		id:         id,
		name:       name,
		capacity:   capacity,
		hourlyRate: hourlyRate,
		amenities:  amenities,
		available:  available,
		areaM2:     areaM2,
	}
}

func (r *Room) ID() string                  { return r.id }
func (r *Room) Name() string                { return r.name }
func (r *Room) Capacity() int               { return r.capacity }
func (r *Room) HourlyRate() decimal.Decimal { return r.hourlyRate }
func (r *Room) Available() bool             { return r.available }
func (r *Room) AreaM2() int                 { return r.areaM2 }

func (r *Room) Amenities() []string {
	return append([]string(nil), r.amenities...)
}
