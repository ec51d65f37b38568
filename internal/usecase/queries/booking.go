package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
type BookingQueries interface {
	GetBooking(ctx context.Context, bookingID, requesterID int64) (*BookingView, error)
	ListAsBooker(ctx context.Context, bookerID int64, req ListRequest) ([]*BookingView, error)
	ListAsOwner(ctx context.Context, ownerID int64, req ListRequest) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingRepository
	items    shared.ItemDirectory
	users    shared.UserDirectory
	clock    clock.Clock
}

func NewBookingQueries(
	bookings shared.BookingRepository,
	items shared.ItemDirectory,
	users shared.UserDirectory,
	clock clock.Clock,
) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clock,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID, requesterID int64) (*BookingView, error) {
	if err := shared.EnsureUserExists(ctx, q.users, requesterID); err != nil {
		return nil, err
	}
	b, err := shared.FindBooking(ctx, q.bookings, bookingID)
	if err != nil {
		return nil, err
	}
	it, err := shared.FindItem(ctx, q.items, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !b.IsBookedBy(requesterID) && !it.IsOwnedBy(requesterID) {
		return nil, errs.Forbidden(shared.ErrNotBookingParty)
	}
	return NewBookingView(b, it), nil
}

func (q *bookingQueriesImpl) ListAsBooker(ctx context.Context, bookerID int64, req ListRequest) ([]*BookingView, error) {
	return q.list(ctx, shared.RoleBooker, bookerID, req)
}

func (q *bookingQueriesImpl) ListAsOwner(ctx context.Context, ownerID int64, req ListRequest) ([]*BookingView, error) {
	return q.list(ctx, shared.RoleOwner, ownerID, req)
}

// list resolves a state into a store query. Status and ALL states are paged by the store;
// time-based states are classified against one clock reading and paged in memory.
func (q *bookingQueriesImpl) list(ctx context.Context, role shared.Role, subjectID int64, req ListRequest) ([]*BookingView, error) {
	state, err := booking.ParseState(req.State)
	if err != nil {
		return nil, err
	}
	page, err := booking.NewPage(req.Page, req.Size)
	if err != nil {
		return nil, errs.InvalidArgument(err)
	}
	if err := shared.EnsureUserExists(ctx, q.users, subjectID); err != nil {
		return nil, err
	}

	query := shared.ListQuery{
		Role:      role,
		SubjectID: subjectID,
		Status:    state.StatusFilter(),
	}

	var bookings []*booking.Booking
	if state.IsTimeBased() {
		all, err := q.bookings.List(ctx, query)
		if err != nil {
			return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
		}
		bookings = page.Slice(booking.FilterByState(all, state, q.clock.Now()))
	} else {
		query.Limit = page.Limit()
		query.Offset = page.Offset()
		bookings, err = q.bookings.List(ctx, query)
		if err != nil {
			return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
		}
	}

	return q.toViews(ctx, bookings)
}

func (q *bookingQueriesImpl) toViews(ctx context.Context, bookings []*booking.Booking) ([]*BookingView, error) {
	views := make([]*BookingView, 0, len(bookings))
	if len(bookings) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(bookings))
	seen := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.ItemID()]; !ok {
			seen[b.ItemID()] = struct{}{}
			ids = append(ids, b.ItemID())
		}
	}

	items, err := q.items.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	byID := make(map[int64]*item.Item, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}

	for _, b := range bookings {
		views = append(views, NewBookingView(b, byID[b.ItemID()]))
	}
	return views, nil
}
