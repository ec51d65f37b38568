package booking

import "time"

// Window is the position of a booking relative to an instant.
type Window int

const (
	WindowPast Window = iota
	WindowCurrent
	WindowFuture
)

func (w Window) String() string {
	switch w {
	case WindowPast:
		return "PAST"
	case WindowCurrent:
		return "CURRENT"
	case WindowFuture:
		return "FUTURE"
	default:
		return "UNKNOWN"
	}
}

// Classify places a slot on the half-open interval [start, end):
// now before start is FUTURE, start <= now < end is CURRENT, now at or after end is PAST.
// Every time-based predicate in the engine goes through this function.
func Classify(slot TimeSlot, now time.Time) Window {
	switch {
	case now.Before(slot.start):
		return WindowFuture
	case now.Before(slot.end):
		return WindowCurrent
	default:
		return WindowPast
	}
}

func (b *Booking) WindowAt(now time.Time) Window {
	return Classify(b.slot, now)
}
