//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
)

// BaseTime is the instant builders and mock clocks agree on.
var BaseTime = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID        int64
	ItemID    int64
	BookerID  int64
	Start     time.Time
	End       time.Time
	Status    booking.Status
	Now       time.Time
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		ItemID:    10,
		BookerID:  2,
		Start:     BaseTime.Add(time.Hour),
		End:       BaseTime.Add(2 * time.Hour),
		Status:    booking.StatusWaiting,
		Now:       BaseTime,
		CreatedAt: BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain goes through creation validation against Now; the result has no id yet.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlotAt(b.Start, b.End, b.Now)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ItemID, b.BookerID, slot, b.Now), nil
}

// BuildStored returns a booking as a store would hand it back, bypassing the past-start check.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	slot, err := booking.NewTimeSlot(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(b.ID, b.ItemID, b.BookerID, slot, b.Status, b.CreatedAt, b.CreatedAt)
}

// BuildView renders the stored booking the way the queries layer returns it. it may be nil.
func (b *BookingBuilder) BuildView(it *item.Item) *queries.BookingView {
	return queries.NewBookingView(b.BuildStored(), it)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(id int64) *BookingBuilder {
	b.ItemID = id
	return b
}

func (b *BookingBuilder) WithBookerID(id int64) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// StartingIn places the slot relative to Now, lasting d.
func (b *BookingBuilder) StartingIn(offset, d time.Duration) *BookingBuilder {
	b.Start = b.Now.Add(offset)
	b.End = b.Start.Add(d)
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = booking.StatusApproved
	return b
}

func (b *BookingBuilder) AsRejected() *BookingBuilder {
	b.Status = booking.StatusRejected
	return b
}
