package response

import (
	"encoding/json"
	"fmt"

	"coworking-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Capacity   int         `json:"capacity"`
	HourlyRate json.Number `json:"hourlyRate" swaggertype:"number" copier:"-"`
	Amenities  []string    `json:"amenities"`
	Available  bool        `json:"available"`
	AreaM2     int         `json:"areaM2"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	// HourlyRate differs in type on each side; copier skips it and it is set below.
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy room %s: %w", v.ID, err)
	}
	resp.HourlyRate = Money(v.HourlyRate)
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	return &resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type QuoteResponse struct {
	RoomID     string      `json:"roomId"`
	StartTime  string      `json:"startTime"`
	EndTime    string      `json:"endTime"`
	Plan       string      `json:"plan"`
	TotalValue json.Number `json:"totalValue" swaggertype:"number"`
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	return &QuoteResponse{
		RoomID:     q.RoomID,
		StartTime:  q.StartTime.String(),
		EndTime:    q.EndTime.String(),
		Plan:       q.Plan,
		TotalValue: Money(q.Total.Amount()),
	}
}
