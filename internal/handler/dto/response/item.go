package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ItemBookingsResponse leaves last_booking and next_booking null for viewers other than the owner.
type ItemBookingsResponse struct {
	ID          int64                 `json:"id"`
	OwnerID     int64                 `json:"owner_id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	LastBooking *BookingShortResponse `json:"last_booking"`
	NextBooking *BookingShortResponse `json:"next_booking"`
}

func FromItemBookingsView(v *queries.ItemBookingsView) (*ItemBookingsResponse, error) {
	var res ItemBookingsResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromItemBookingsViews(vs []*queries.ItemBookingsView) ([]*ItemBookingsResponse, error) {
	res := make([]*ItemBookingsResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromItemBookingsView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
