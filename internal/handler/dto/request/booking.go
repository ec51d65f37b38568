package request

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" binding:"required,gt=0"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}

// ListBookingsQuery uses an element offset (from) rather than a page index.
type ListBookingsQuery struct {
	State string `form:"state"`
	From  *int   `form:"from"`
	Size  *int   `form:"size"`
}

// ToListRequest converts the offset into a zero-based page. A missing size falls back to defaultSize.
// Invalid values are passed through unchanged so the list query reports them in its own order.
func (q *ListBookingsQuery) ToListRequest(defaultSize int) queries.ListRequest {
	from, size := 0, defaultSize
	if q.From != nil {
		from = *q.From
	}
	if q.Size != nil {
		size = *q.Size
	}

	req := queries.ListRequest{State: q.State, Page: from, Size: size}
	if page, err := booking.PageFromOffset(from, size); err == nil {
		req.Page = page.Index()
	}
	return req
}
