package queries

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
)

// Read models returned to the transport layer.

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerRef struct {
	ID int64 `json:"id"`
}

type BookingView struct {
	ID        int64     `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Item      ItemRef   `json:"item"`
	Booker    BookerRef `json:"booker"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingShortView is the compact form used inside item projections.
type BookingShortView struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ItemBookingsView carries LastBooking and NextBooking only when the viewer owns the item.
type ItemBookingsView struct {
	ID          int64             `json:"id"`
	OwnerID     int64             `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	LastBooking *BookingShortView `json:"last_booking"`
	NextBooking *BookingShortView `json:"next_booking"`
}

// ListRequest is a booking list request before validation. Page is zero-based.
type ListRequest struct {
	State string
	Page  int
	Size  int
}

func NewBookingView(b *booking.Booking, it *item.Item) *BookingView {
	v := &BookingView{
		ID:        b.ID(),
		Start:     b.Start(),
		End:       b.End(),
		Status:    b.Status().String(),
		Item:      ItemRef{ID: b.ItemID()},
		Booker:    BookerRef{ID: b.BookerID()},
		CreatedAt: b.CreatedAt(),
	}
	if it != nil {
		v.Item.Name = it.Name()
	}
	return v
}

func newBookingShortView(b *booking.Booking) *BookingShortView {
	if b == nil {
		return nil
	}
	return &BookingShortView{
		ID:       b.ID(),
		BookerID: b.BookerID(),
		Start:    b.Start(),
		End:      b.End(),
	}
}

func newItemBookingsView(it *item.Item) *ItemBookingsView {
	return &ItemBookingsView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	}
}
