package memstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[b.ItemID()]; !ok {
		return nil, infra.WrapRepoErr("item does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := s.users[b.BookerID()]; !ok {
		return nil, infra.WrapRepoErr("booker does not exist", nil, infra.KindForeignKeyViolated)
	}

	idx := len(s.arena)
	rec := record{
		id:        int64(idx + 1),
		itemID:    b.ItemID(),
		bookerID:  b.BookerID(),
		slot:      b.Slot(),
		status:    b.Status(),
		createdAt: b.CreatedAt(),
		updatedAt: b.UpdatedAt(),
	}
	s.arena = append(s.arena, rec)
	s.byBooker[rec.bookerID] = append(s.byBooker[rec.bookerID], idx)
	s.byItem[rec.itemID] = append(s.byItem[rec.itemID], idx)

	return rec.toDomain(), nil
}

func (r *BookingRepository) FindByID(_ context.Context, id int64) (*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.arena[idx].toDomain(), nil
}

// UpdateStatusIfCurrent is the compare-and-set on status; check and write share one lock.
func (r *BookingRepository) UpdateStatusIfCurrent(_ context.Context, id int64, expected, next booking.Status, at time.Time) (*booking.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.lookup(id)
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	rec := &s.arena[idx]
	if rec.status != expected {
		return nil, infra.WrapRepoErr("booking status changed", nil, infra.KindConflict)
	}
	rec.status = next
	rec.updatedAt = at
	return rec.toDomain(), nil
}

func (r *BookingRepository) List(_ context.Context, q shared.ListQuery) ([]*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var indices []int
	switch q.Role {
	case shared.RoleBooker:
		indices = s.byBooker[q.SubjectID]
	case shared.RoleOwner:
		for _, itemID := range s.itemsByOwner[q.SubjectID] {
			indices = append(indices, s.byItem[itemID]...)
		}
	default:
		return nil, infra.WrapRepoErr("unknown list role "+q.Role.String(), nil)
	}

	out := s.collect(indices, func(rec record) bool {
		return q.Status == nil || rec.status == *q.Status
	})
	booking.SortByStartDesc(out)

	limit := q.Limit
	if limit <= 0 {
		limit = len(out)
	}
	return window(out, q.Offset, limit), nil
}

func (r *BookingRepository) ListByItems(_ context.Context, itemIDs []int64) ([]*booking.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]struct{}, len(itemIDs))
	var indices []int
	for _, id := range itemIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		indices = append(indices, s.byItem[id]...)
	}

	out := s.collect(indices, func(record) bool { return true })
	booking.SortByStartDesc(out)
	return out, nil
}

func (s *Store) collect(indices []int, keep func(record) bool) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(indices))
	for _, idx := range indices {
		if rec := s.arena[idx]; keep(rec) {
			out = append(out, rec.toDomain())
		}
	}
	return out
}

func window(bookings []*booking.Booking, offset, limit int) []*booking.Booking {
	if offset < 0 || offset >= len(bookings) {
		return []*booking.Booking{}
	}
	end := len(bookings)
	if limit < end-offset {
		end = offset + limit
	}
	return bookings[offset:end]
}
