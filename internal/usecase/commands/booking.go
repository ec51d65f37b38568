package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
type BookingCommands interface {
	CreateBooking(ctx context.Context, bookerID int64, in CreateBookingInput) (*queries.BookingView, error)
	DecideBooking(ctx context.Context, bookingID, actingUserID int64, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings shared.BookingRepository
	items    shared.ItemDirectory
	users    shared.UserDirectory
	clock    clock.Clock
}

func NewBookingCommands(
	bookings shared.BookingRepository,
	items shared.ItemDirectory,
	users shared.UserDirectory,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clock,
	}
}

// CreateBooking checks the interval, then the item and booker, then ownership, then availability.
// Overlapping bookings on the same item are not rejected.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, bookerID int64, in CreateBookingInput) (*queries.BookingView, error) {
	now := c.clock.Now()

	slot, err := booking.NewTimeSlotAt(in.Start, in.End, now)
	if err != nil {
		return nil, errs.InvalidArgument(err)
	}

	it, err := shared.FindItem(ctx, c.items, in.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := shared.FindUser(ctx, c.users, bookerID); err != nil {
		return nil, err
	}
	if it.IsOwnedBy(bookerID) {
		return nil, errs.Forbidden(shared.ErrOwnerCannotBook)
	}
	if !it.Available() {
		return nil, errs.Conflict(shared.ErrItemUnavailable)
	}

	saved, err := c.bookings.Create(ctx, booking.NewBooking(it.ID(), bookerID, slot, now))
	if err != nil {
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", saved.ID(),
		"item_id", saved.ItemID(),
		"booker_id", saved.BookerID())

	return queries.NewBookingView(saved, it), nil
}

// DecideBooking lets the item owner approve or reject a WAITING booking exactly once.
// The store applies the change only if the status is still the one read here.
func (c *bookingCommandsImpl) DecideBooking(ctx context.Context, bookingID, actingUserID int64, approve bool) (*queries.BookingView, error) {
	b, err := shared.FindBooking(ctx, c.bookings, bookingID)
	if err != nil {
		return nil, err
	}
	it, err := shared.FindItem(ctx, c.items, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(actingUserID) {
		return nil, errs.Forbidden(shared.ErrNotItemOwner)
	}

	now := c.clock.Now()
	expected := b.Status()
	if err := b.Decide(approve, now); err != nil {
		return nil, errs.Conflict(err)
	}

	updated, err := c.bookings.UpdateStatusIfCurrent(ctx, b.ID(), expected, b.Status(), now)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, c.lostDecision(ctx, b.ID(), approve, now)
		}
		return nil, errs.Mark(err, shared.ErrDatabaseOperationFailed)
	}

	slog.InfoContext(ctx, "booking decided",
		"booking_id", updated.ID(),
		"status", updated.Status().String(),
		"owner_id", actingUserID)

	return queries.NewBookingView(updated, it), nil
}

// lostDecision explains a failed compare-and-set with the status another caller committed.
func (c *bookingCommandsImpl) lostDecision(ctx context.Context, bookingID int64, approve bool, now time.Time) error {
	current, err := shared.FindBooking(ctx, c.bookings, bookingID)
	if err != nil {
		return err
	}
	if err := current.Decide(approve, now); err != nil {
		return errs.Conflict(err)
	}
	return errs.Conflict(booking.ErrAlreadyDecided)
}
