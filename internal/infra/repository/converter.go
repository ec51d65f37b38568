package repository

import (
	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra/pgquery"
	"shareit/internal/pkg/pgconv"
)

func toBooking(row pgquery.Bookings) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ItemID,
		row.BookerID,
		slot,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toBookings(rows []pgquery.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func toItem(row pgquery.Items) (*item.Item, error) {
	return item.NewItem(row.ID, row.OwnerID, row.Name, row.Description, row.Available)
}

func toItems(rows []pgquery.Items) ([]*item.Item, error) {
	out := make([]*item.Item, 0, len(rows))
	for _, row := range rows {
		it, err := toItem(row)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func toUser(row pgquery.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(row.ID, row.Name, email)
}
