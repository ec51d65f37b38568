package repository

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/pgquery"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

type BookingQueries interface {
	CreateBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateBookingParams) (pgquery.Bookings, error)
	GetBookingByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Bookings, error)
	UpdateBookingStatusIfCurrent(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBookingStatusIfCurrentParams) (pgquery.Bookings, error)
	ListBookingsByItemIDs(ctx context.Context, db pgquery.DBTX, itemIds []int64) ([]pgquery.Bookings, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, r.db, pgquery.CreateBookingParams{
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartTime: pgconv.TimeToPgtype(b.Start()),
		EndTime:   pgconv.TimeToPgtype(b.End()),
		Status:    b.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("booking references unknown item or user", err, infra.KindForeignKeyViolated)
		}
		if pgconv.IsCheckViolation(err) {
			return nil, infra.WrapRepoErr("booking rejected by table constraint", err, infra.KindCheckViolated)
		}
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return r.convert(row)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return r.convert(row)
}

// UpdateStatusIfCurrent runs a single conditional UPDATE. When it matches nothing the row is
// looked up again to tell a missing booking from one whose status already moved.
func (r *BookingRepository) UpdateStatusIfCurrent(ctx context.Context, id int64, expected, next booking.Status, at time.Time) (*booking.Booking, error) {
	row, err := r.queries.UpdateBookingStatusIfCurrent(ctx, r.db, pgquery.UpdateBookingStatusIfCurrentParams{
		ID:        id,
		Expected:  expected.String(),
		Status:    next.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err == nil {
		return r.convert(row)
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}

	if _, findErr := r.FindByID(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, infra.WrapRepoErr("booking status changed", err, infra.KindConflict)
}

func (r *BookingRepository) List(ctx context.Context, q shared.ListQuery) ([]*booking.Booking, error) {
	query, args, err := buildListQuery(q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := []*booking.Booking{}
	for rows.Next() {
		row, err := pgquery.ScanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		b, err := r.convert(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]*booking.Booking, error) {
	if len(itemIDs) == 0 {
		return []*booking.Booking{}, nil
	}
	rows, err := r.queries.ListBookingsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	out, err := toBookings(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return out, nil
}

func (r *BookingRepository) convert(row pgquery.Bookings) (*booking.Booking, error) {
	b, err := toBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

var bookingSelectColumns = []any{
	goqu.I("b.id"),
	goqu.I("b.item_id"),
	goqu.I("b.booker_id"),
	goqu.I("b.start_time"),
	goqu.I("b.end_time"),
	goqu.I("b.status"),
	goqu.I("b.created_at"),
	goqu.I("b.updated_at"),
}

// buildListQuery selects a subject's bookings, newest start first, with the optional
// status restriction and page window applied in SQL.
func buildListQuery(q shared.ListQuery) (string, []any, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("bookings").As("b")).
		Select(bookingSelectColumns...)

	switch q.Role {
	case shared.RoleBooker:
		ds = ds.Where(goqu.I("b.booker_id").Eq(q.SubjectID))
	case shared.RoleOwner:
		ds = ds.
			Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
			Where(goqu.I("i.owner_id").Eq(q.SubjectID))
	default:
		return "", nil, errUnknownRole(q.Role)
	}

	if q.Status != nil {
		ds = ds.Where(goqu.I("b.status").Eq(q.Status.String()))
	}

	ds = ds.Order(goqu.I("b.start_time").Desc(), goqu.I("b.id").Desc())
	if q.Limit > 0 {
		ds = ds.Limit(uint(q.Limit))
	}
	if q.Offset > 0 {
		ds = ds.Offset(uint(q.Offset))
	}

	return ds.Prepared(true).ToSQL()
}

func errUnknownRole(r shared.Role) error {
	return errs.Newf("unknown list role %s", r)
}
