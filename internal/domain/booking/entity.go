package booking

import (
	"time"
)

type Booking struct {
	id        int64
	itemID    int64
	bookerID  int64
	slot      TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking. The id stays zero until the store assigns one.
func NewBooking(itemID, bookerID int64, slot TimeSlot, now time.Time) *Booking {
	return &Booking{
		itemID:    itemID,
		bookerID:  bookerID,
		slot:      slot,
		status:    StatusWaiting,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id, itemID, bookerID int64,
	slot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a WAITING booking to APPROVED or REJECTED. A booking is decided at most once.
func (b *Booking) Decide(approve bool, now time.Time) error {
	target := StatusRejected
	if approve {
		target = StatusApproved
	}
	if b.status == StatusApproved {
		return ErrAlreadyApproved
	}
	if !b.status.CanTransitionTo(target) {
		return ErrAlreadyDecided
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) IsBookedBy(userID int64) bool {
	return b.bookerID == userID
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) ItemID() int64        { return b.itemID }
func (b *Booking) BookerID() int64      { return b.bookerID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Start() time.Time     { return b.slot.start }
func (b *Booking) End() time.Time       { return b.slot.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
