package booking

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrAlreadyApproved = errors.New("already approved")
	ErrAlreadyDecided  = errors.New("already decided")
)

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// validTransitions lists every status change the engine performs itself.
// CANCELLED is set only by administrative paths outside the engine.
var validTransitions = map[Status][]Status{
	StatusWaiting:   {StatusApproved, StatusRejected},
	StatusApproved:  {},
	StatusRejected:  {},
	StatusCancelled: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}
