package booking

import (
	"errors"
	"time"
)

var (
	ErrEndNotAfterStart = errors.New("end must be after start")
	ErrStartInPast      = errors.New("start cannot be in the past")
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlotAt validates a requested interval against now. A start equal to now is accepted.
func NewTimeSlotAt(start, end, now time.Time) (TimeSlot, error) {
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return TimeSlot{}, err
	}
	if start.Before(now) {
		return TimeSlot{}, ErrStartInPast
	}
	return slot, nil
}

// NewTimeSlot only checks ordering. It is used when reading stored bookings whose start may be long past.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrEndNotAfterStart
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}
