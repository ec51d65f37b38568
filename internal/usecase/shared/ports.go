package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
)

// Role selects which relation of the subject a booking list is built from.
type Role int

const (
	RoleBooker Role = iota
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleBooker:
		return "BOOKER"
	case RoleOwner:
		return "OWNER"
	default:
		return "UNKNOWN"
	}
}

// ListQuery asks the store for a subject's bookings ordered by start descending.
// A nil Status means any status. A zero Limit means no paging.
type ListQuery struct {
	Role      Role
	SubjectID int64
	Status    *booking.Status
	Limit     int
	Offset    int
}

// BookingRepository is the booking store. Missing rows surface as infra KindNotFound and a
// lost compare-and-set as infra KindConflict.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	FindByID(ctx context.Context, id int64) (*booking.Booking, error)
	// UpdateStatusIfCurrent sets status to next only while it still equals expected.
	UpdateStatusIfCurrent(ctx context.Context, id int64, expected, next booking.Status, at time.Time) (*booking.Booking, error)
	List(ctx context.Context, q ListQuery) ([]*booking.Booking, error)
	ListByItems(ctx context.Context, itemIDs []int64) ([]*booking.Booking, error)
}

type ItemDirectory interface {
	FindByID(ctx context.Context, id int64) (*item.Item, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*item.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*item.Item, error)
}

type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
