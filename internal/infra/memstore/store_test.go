//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/memstore"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const seedJSON = `{
  "users": [
    {"id": 1, "name": "Owner", "email": "owner@example.com"},
    {"id": 2, "name": "Booker", "email": "booker@example.com"},
    {"id": 3, "name": "Other", "email": "other@example.com"}
  ],
  "items": [
    {"id": 10, "owner_id": 1, "name": "Drill", "description": "cordless", "available": true},
    {"id": 11, "owner_id": 1, "name": "Ladder", "available": false},
    {"id": 12, "owner_id": 3, "name": "Tent", "available": true}
  ]
}`

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	repo  *memstore.BookingRepository
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	seed, err := memstore.ParseSeed([]byte(seedJSON))
	s.Require().NoError(err)
	s.store = memstore.NewStore()
	s.Require().NoError(s.store.Apply(seed))
	s.repo = memstore.NewBookingRepository(s.store)
}

func (s *StoreSuite) create(itemID, bookerID int64, offset time.Duration) *booking.Booking {
	b, err := builder.NewBookingBuilder().
		WithItemID(itemID).
		WithBookerID(bookerID).
		StartingIn(offset, time.Hour).
		BuildDomain()
	s.Require().NoError(err)
	saved, err := s.repo.Create(s.ctx, b)
	s.Require().NoError(err)
	return saved
}

func (s *StoreSuite) TestCreateAssignsSequentialIDs() {
	first := s.create(10, 2, time.Hour)
	second := s.create(12, 2, 2*time.Hour)

	s.Equal(int64(1), first.ID())
	s.Equal(int64(2), second.ID())
	s.Equal(booking.StatusWaiting, second.Status())

	found, err := s.repo.FindByID(s.ctx, second.ID())
	s.Require().NoError(err)
	s.Equal(second.ItemID(), found.ItemID())
}

func (s *StoreSuite) TestCreateRejectsUnknownReferences() {
	b, err := builder.NewBookingBuilder().WithItemID(999).WithBookerID(2).BuildDomain()
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, b)
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated))
}

func (s *StoreSuite) TestFindByIDMissing() {
	for _, id := range []int64{0, -1, 1, 42} {
		_, err := s.repo.FindByID(s.ctx, id)
		s.True(infra.IsKind(err, infra.KindNotFound), "id=%d", id)
	}
}

func (s *StoreSuite) TestReturnedBookingsAreCopies() {
	saved := s.create(10, 2, time.Hour)
	s.Require().NoError(saved.Decide(true, builder.BaseTime))

	found, err := s.repo.FindByID(s.ctx, saved.ID())
	s.Require().NoError(err)
	s.Equal(booking.StatusWaiting, found.Status())
}

func (s *StoreSuite) TestUpdateStatusIfCurrent() {
	saved := s.create(10, 2, time.Hour)
	at := builder.BaseTime.Add(time.Minute)

	updated, err := s.repo.UpdateStatusIfCurrent(s.ctx, saved.ID(), booking.StatusWaiting, booking.StatusApproved, at)
	s.Require().NoError(err)
	s.Equal(booking.StatusApproved, updated.Status())
	s.Equal(at, updated.UpdatedAt())

	_, err = s.repo.UpdateStatusIfCurrent(s.ctx, saved.ID(), booking.StatusWaiting, booking.StatusRejected, at)
	s.True(infra.IsKind(err, infra.KindConflict))

	_, err = s.repo.UpdateStatusIfCurrent(s.ctx, 99, booking.StatusWaiting, booking.StatusRejected, at)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *StoreSuite) TestListAsBookerOrderedAndPaged() {
	a := s.create(10, 2, time.Hour)
	b := s.create(12, 2, 3*time.Hour)
	c := s.create(10, 2, 2*time.Hour)
	s.create(10, 3, 4*time.Hour) // another booker

	all, err := s.repo.List(s.ctx, shared.ListQuery{Role: shared.RoleBooker, SubjectID: 2})
	s.Require().NoError(err)
	s.Equal([]int64{b.ID(), c.ID(), a.ID()}, ids(all))

	page, err := s.repo.List(s.ctx, shared.ListQuery{Role: shared.RoleBooker, SubjectID: 2, Limit: 2, Offset: 2})
	s.Require().NoError(err)
	s.Equal([]int64{a.ID()}, ids(page))

	beyond, err := s.repo.List(s.ctx, shared.ListQuery{Role: shared.RoleBooker, SubjectID: 2, Limit: 2, Offset: 4})
	s.Require().NoError(err)
	s.NotNil(beyond)
	s.Empty(beyond)
}

func (s *StoreSuite) TestListAsOwnerWithStatus() {
	a := s.create(10, 2, time.Hour)
	b := s.create(11, 3, 2*time.Hour)
	s.create(12, 2, 3*time.Hour) // owned by user 3

	_, err := s.repo.UpdateStatusIfCurrent(s.ctx, b.ID(), booking.StatusWaiting, booking.StatusRejected, builder.BaseTime)
	s.Require().NoError(err)

	owned, err := s.repo.List(s.ctx, shared.ListQuery{Role: shared.RoleOwner, SubjectID: 1})
	s.Require().NoError(err)
	s.Equal([]int64{b.ID(), a.ID()}, ids(owned))

	waiting := booking.StatusWaiting
	onlyWaiting, err := s.repo.List(s.ctx, shared.ListQuery{Role: shared.RoleOwner, SubjectID: 1, Status: &waiting})
	s.Require().NoError(err)
	s.Equal([]int64{a.ID()}, ids(onlyWaiting))
}

func (s *StoreSuite) TestListByItems() {
	a := s.create(10, 2, time.Hour)
	b := s.create(11, 2, 2*time.Hour)
	s.create(12, 2, 3*time.Hour)

	got, err := s.repo.ListByItems(s.ctx, []int64{10, 11, 10})
	s.Require().NoError(err)
	s.Equal([]int64{b.ID(), a.ID()}, ids(got))
}

func (s *StoreSuite) TestDirectories() {
	items := memstore.NewItemDirectory(s.store)
	users := memstore.NewUserDirectory(s.store)

	owned, err := items.ListByOwner(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(owned, 2)
	s.Equal(int64(10), owned[0].ID())
	s.Equal(int64(11), owned[1].ID())

	found, err := items.FindByIDs(s.ctx, []int64{12, 999})
	s.Require().NoError(err)
	s.Len(found, 1)

	_, err = items.FindByID(s.ctx, 999)
	s.True(infra.IsKind(err, infra.KindNotFound))

	ok, err := users.Exists(s.ctx, 3)
	s.Require().NoError(err)
	s.True(ok)
	_, err = users.FindByID(s.ctx, 4)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

// Concurrent decisions on one WAITING booking: exactly one compare-and-set wins.
func (s *StoreSuite) TestUpdateStatusIfCurrentRace() {
	saved := s.create(10, 2, time.Hour)

	const workers = 32
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		next := booking.StatusApproved
		if i%2 == 1 {
			next = booking.StatusRejected
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.repo.UpdateStatusIfCurrent(s.ctx, saved.ID(), booking.StatusWaiting, next, builder.BaseTime)
			switch {
			case err == nil:
				wins.Add(1)
			case infra.IsKind(err, infra.KindConflict):
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(int32(workers-1), conflicts.Load())
}

func TestSeed(t *testing.T) {
	t.Run("unknown owner", func(t *testing.T) {
		seed, err := memstore.ParseSeed([]byte(`{"users":[],"items":[{"id":1,"owner_id":7,"name":"Saw"}]}`))
		require.NoError(t, err)
		assert.ErrorContains(t, memstore.NewStore().Apply(seed), "unknown owner 7")
	})

	t.Run("invalid email", func(t *testing.T) {
		seed, err := memstore.ParseSeed([]byte(`{"users":[{"id":1,"name":"A","email":"nope"}]}`))
		require.NoError(t, err)
		assert.Error(t, memstore.NewStore().Apply(seed))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := memstore.ParseSeed([]byte(`{"users": [`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := memstore.LoadSeedFile("/nonexistent/seed.json")
		assert.Error(t, err)
	})
}

func ids(bookings []*booking.Booking) []int64 {
	out := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID())
	}
	return out
}
