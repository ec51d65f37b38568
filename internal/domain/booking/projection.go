package booking

import "time"

// Projection holds an item's most recent and upcoming approved bookings.
type Projection struct {
	Last *Booking
	Next *Booking
}

// Project scans one item's history. Only APPROVED bookings count. Last is the greatest
// start at or before now, Next the smallest start at or after now, so a booking starting
// exactly at now fills both.
func Project(bookings []*Booking, now time.Time) Projection {
	var p Projection
	for _, b := range bookings {
		if b.status != StatusApproved {
			continue
		}
		start := b.slot.start
		if !start.After(now) && (p.Last == nil || start.After(p.Last.slot.start)) {
			p.Last = b
		}
		if !start.Before(now) && (p.Next == nil || start.Before(p.Next.slot.start)) {
			p.Next = b
		}
	}
	return p
}
