package queries

import (
	"context"
	"log/slog"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

//go:generate mockgen -source=item.go -destination=../../../tests/mock/queries/item.go -package=queriesmock
type ItemQueries interface {
	ProjectItemBookings(ctx context.Context, itemID, viewerID int64) (*ItemBookingsView, error)
	ListOwnerItemBookings(ctx context.Context, ownerID int64) ([]*ItemBookingsView, error)
}

type itemQueriesImpl struct {
	bookings shared.BookingRepository
	items    shared.ItemDirectory
	users    shared.UserDirectory
	clock    clock.Clock
}

func NewItemQueries(
	bookings shared.BookingRepository,
	items shared.ItemDirectory,
	users shared.UserDirectory,
	clock clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clock,
	}
}

func (q *itemQueriesImpl) ProjectItemBookings(ctx context.Context, itemID, viewerID int64) (*ItemBookingsView, error) {
	it, err := shared.FindItem(ctx, q.items, itemID)
	if err != nil {
		return nil, err
	}

	view := newItemBookingsView(it)
	if !it.IsOwnedBy(viewerID) {
		return view, nil
	}

	history, err := q.bookings.ListByItems(ctx, []int64{it.ID()})
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	applyProjection(view, booking.Project(history, q.clock.Now()))
	return view, nil
}

// ListOwnerItemBookings is the owner dashboard: every owned item, id ascending, with its projection.
func (q *itemQueriesImpl) ListOwnerItemBookings(ctx context.Context, ownerID int64) ([]*ItemBookingsView, error) {
	if err := shared.EnsureUserExists(ctx, q.users, ownerID); err != nil {
		return nil, err
	}

	owned, err := q.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	views := make([]*ItemBookingsView, 0, len(owned))
	if len(owned) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(owned))
	for _, it := range owned {
		ids = append(ids, it.ID())
	}
	history, err := q.bookings.ListByItems(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}
	byItem := make(map[int64][]*booking.Booking, len(owned))
	for _, b := range history {
		byItem[b.ItemID()] = append(byItem[b.ItemID()], b)
	}

	now := q.clock.Now()
	for _, it := range owned {
		view := newItemBookingsView(it)
		applyProjection(view, booking.Project(byItem[it.ID()], now))
		views = append(views, view)
	}

	slog.DebugContext(ctx, "owner dashboard built", "owner_id", ownerID, "items", len(views))
	return views, nil
}

func applyProjection(view *ItemBookingsView, p booking.Projection) {
	view.LastBooking = newBookingShortView(p.Last)
	view.NextBooking = newBookingShortView(p.Next)
}
