//go:build unit || e2e

package builder

import (
	"coworking-booking/internal/domain/client"
	"coworking-booking/internal/domain/room"

	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	ID         string
	Name       string
	Capacity   int
	HourlyRate string
	Amenities  []string
	Available  bool
	AreaM2     int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         "sala-1",
		Name:       "Sala Executiva A",
		Capacity:   6,
		HourlyRate: "80",
		Amenities:  []string{"Projetor", "Wi-Fi"},
		Available:  true,
		AreaM2:     25,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	rate, err := decimal.NewFromString(r.HourlyRate)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(r.ID, r.Name, r.Capacity, rate, r.Amenities, r.Available, r.AreaM2)
}

func (r *RoomBuilder) MustBuild() *room.Room {
	rm, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rm
}

func (r *RoomBuilder) WithID(id string) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithHourlyRate(rate string) *RoomBuilder {
	r.HourlyRate = rate
	return r
}

func (r *RoomBuilder) AsUnavailable() *RoomBuilder {
	r.Available = false
	return r
}

type ClientBuilder struct {
	ID    string
	Name  string
	Email string
	Phone string
	Plan  client.PlanTier
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:    "maria",
		Name:  "Maria Fernanda Costa",
		Email: "maria@consultoriamfc.com.br",
		Phone: "(11) 99999-3333",
		Plan:  client.PlanBasic,
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

func (c *ClientBuilder) BuildDomain() (*client.Client, error) {
	return client.NewClient(c.ID, c.Name, c.Email, c.Phone, c.Plan)
}

func (c *ClientBuilder) MustBuild() *client.Client {
	cl, err := c.BuildDomain()
	if err != nil {
		panic(err)
	}
	return cl
}

func (c *ClientBuilder) WithID(id string) *ClientBuilder {
	c.ID = id
	return c
}

func (c *ClientBuilder) AsFullPlan() *ClientBuilder {
	c.ID = "carlos.silva"
	c.Name = "Dr. Carlos Eduardo Silva"
	c.Email = "carlos.silva@advocaciasilva.com.br"
	c.Plan = client.PlanFull
	return c
}
