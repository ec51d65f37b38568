package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerRefResponse struct {
	ID int64 `json:"id"`
}

type BookingResponse struct {
	ID        int64             `json:"id"`
	Start     time.Time         `json:"start"`
	End       time.Time         `json:"end"`
	Status    string            `json:"status"`
	Item      ItemRefResponse   `json:"item"`
	Booker    BookerRefResponse `json:"booker"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
