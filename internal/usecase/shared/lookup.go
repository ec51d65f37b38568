package shared

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

// FindBooking resolves a booking or fails with ErrBookingNotFound.
func FindBooking(ctx context.Context, repo BookingRepository, id int64) (*booking.Booking, error) {
	b, err := repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func FindItem(ctx context.Context, items ItemDirectory, id int64) (*item.Item, error) {
	it, err := items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return it, nil
}

func FindUser(ctx context.Context, users UserDirectory, id int64) (*user.User, error) {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u, nil
}

func EnsureUserExists(ctx context.Context, users UserDirectory, id int64) error {
	ok, err := users.Exists(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ok {
		return errs.NotFound(ErrUserNotFound)
	}
	return nil
}
