package shared

import "github.com/shopspring/decimal"

// Write-side snapshots prevent dependency on Read-side query types
type RoomSnapshot struct {
	ID         string
	Name       string
	Capacity   int
	HourlyRate decimal.Decimal
	Amenities  []string
	Available  bool
	AreaM2     int
}

type ClientSnapshot struct {
	ID    string
	Name  string
	Email string
	Phone string
	Plan  string
}
