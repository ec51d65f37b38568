// Package memstore keeps bookings in an arena slice indexed by booker and item. Ids come from
// a counter owned by the store; every read hands out a copy so callers never share state.
package memstore

import (
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
)

type record struct {
	id        int64
	itemID    int64
	bookerID  int64
	slot      booking.TimeSlot
	status    booking.Status
	createdAt time.Time
	updatedAt time.Time
}

func (r record) toDomain() *booking.Booking {
	return booking.ReconstructBooking(r.id, r.itemID, r.bookerID, r.slot, r.status, r.createdAt, r.updatedAt)
}

type Store struct {
	mu sync.RWMutex

	// arena[i] holds the booking with id i+1
	arena    []record
	byBooker map[int64][]int
	byItem   map[int64][]int

	items        map[int64]*item.Item
	itemsByOwner map[int64][]int64
	users        map[int64]*user.User
}

func NewStore() *Store {
	return &Store{
		byBooker:     make(map[int64][]int),
		byItem:       make(map[int64][]int),
		items:        make(map[int64]*item.Item),
		itemsByOwner: make(map[int64][]int64),
		users:        make(map[int64]*user.User),
	}
}

// PutUser registers a directory entry. Re-putting an id replaces it.
func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

// PutItem registers a catalog entry. Re-putting an id replaces it and moves it to the new owner.
func (s *Store) PutItem(it *item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.items[it.ID()]; ok {
		s.itemsByOwner[prev.OwnerID()] = removeID(s.itemsByOwner[prev.OwnerID()], it.ID())
	}
	s.items[it.ID()] = it
	s.itemsByOwner[it.OwnerID()] = insertSorted(s.itemsByOwner[it.OwnerID()], it.ID())
}

func (s *Store) hasUser(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

func (s *Store) lookup(id int64) (int, bool) {
	idx := int(id - 1)
	if id <= 0 || idx >= len(s.arena) {
		return 0, false
	}
	return idx, true
}

func insertSorted(ids []int64, id int64) []int64 {
	i := 0
	for i < len(ids) && ids[i] < id {
		i++
	}
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
