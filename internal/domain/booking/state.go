package booking

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

// State is the query-time filter a booking list is requested with. It is never persisted.
type State string

const (
	StateAll       State = "ALL"
	StateCurrent   State = "CURRENT"
	StatePast      State = "PAST"
	StateFuture    State = "FUTURE"
	StateWaiting   State = "WAITING"
	StateApproved  State = "APPROVED"
	StateRejected  State = "REJECTED"
	StateCancelled State = "CANCELLED"
)

// ParseState accepts tokens case-insensitively. An empty token means ALL.
func ParseState(token string) (State, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return StateAll, nil
	}
	s := State(strings.ToUpper(trimmed))
	if !s.IsValid() {
		return "", errs.UnsupportedState(token)
	}
	return s, nil
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAll, StateCurrent, StatePast, StateFuture,
		StateWaiting, StateApproved, StateRejected, StateCancelled:
		return true
	default:
		return false
	}
}

func (s State) IsTimeBased() bool {
	switch s {
	case StateCurrent, StatePast, StateFuture:
		return true
	default:
		return false
	}
}

// StatusFilter returns the persisted status a state maps to, or nil when the state
// does not restrict on status.
func (s State) StatusFilter() *Status {
	var st Status
	switch s {
	case StateWaiting:
		st = StatusWaiting
	case StateApproved:
		st = StatusApproved
	case StateRejected:
		st = StatusRejected
	case StateCancelled:
		st = StatusCancelled
	default:
		return nil
	}
	return &st
}

// Window returns the time window a time-based state selects.
func (s State) Window() (Window, bool) {
	switch s {
	case StateCurrent:
		return WindowCurrent, true
	case StatePast:
		return WindowPast, true
	case StateFuture:
		return WindowFuture, true
	default:
		return 0, false
	}
}

// Matches reports whether b belongs to the state at now.
func (s State) Matches(b *Booking, now time.Time) bool {
	if w, ok := s.Window(); ok {
		return b.WindowAt(now) == w
	}
	if st := s.StatusFilter(); st != nil {
		return b.status == *st
	}
	return s == StateAll
}
