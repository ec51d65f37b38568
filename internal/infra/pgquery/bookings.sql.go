package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns is the select list every booking query scans with ScanBooking.
const BookingColumns = "id, item_id, booker_id, start_time, end_time, status, created_at, updated_at"

type RowScanner interface {
	Scan(dest ...any) error
}

func ScanBooking(row RowScanner) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.ItemID,
		&i.BookerID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `
INSERT INTO bookings (item_id, booker_id, start_time, end_time, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + BookingColumns

type CreateBookingParams struct {
	ItemID    int64              `json:"item_id"`
	BookerID  int64              `json:"booker_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Bookings, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ItemID,
		arg.BookerID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.CreatedAt,
	)
	return ScanBooking(row)
}

const getBookingByID = `
SELECT ` + BookingColumns + `
FROM bookings
WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id int64) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	return ScanBooking(row)
}

const updateBookingStatusIfCurrent = `
UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2
RETURNING ` + BookingColumns

type UpdateBookingStatusIfCurrentParams struct {
	ID        int64              `json:"id"`
	Expected  string             `json:"expected"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBookingStatusIfCurrent(ctx context.Context, db DBTX, arg UpdateBookingStatusIfCurrentParams) (Bookings, error) {
	row := db.QueryRow(ctx, updateBookingStatusIfCurrent,
		arg.ID,
		arg.Expected,
		arg.Status,
		arg.UpdatedAt,
	)
	return ScanBooking(row)
}

const listBookingsByItemIDs = `
SELECT ` + BookingColumns + `
FROM bookings
WHERE item_id = ANY($1::bigint[])
ORDER BY start_time DESC, id DESC`

func (q *Queries) ListBookingsByItemIDs(ctx context.Context, db DBTX, itemIds []int64) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookingsByItemIDs, itemIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Bookings{}
	for rows.Next() {
		i, err := ScanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
