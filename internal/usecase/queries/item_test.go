//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/storetest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type ItemQueriesTestSuite struct {
	suite.Suite
	ctx context.Context
	fx  *storetest.Fixture
	q   queries.ItemQueries
}

func TestItemQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fx = storetest.NewFixture()
	s.q = queries.NewItemQueries(s.fx.Bookings, s.fx.Items, s.fx.Users, s.fx.Clock)
}

func (s *ItemQueriesTestSuite) store(itemID int64, from, to time.Duration, status booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder().
		WithItemID(itemID).
		WithBookerID(storetest.BookerID).
		WithSlot(builder.BaseTime.Add(from), builder.BaseTime.Add(to)).
		WithStatus(status).
		BuildStored()
	saved, err := s.fx.Bookings.Create(s.ctx, b)
	s.Require().NoError(err)
	return saved
}

func short(b *booking.Booking) *queries.BookingShortView {
	return &queries.BookingShortView{ID: b.ID(), BookerID: b.BookerID(), Start: b.Start(), End: b.End()}
}

func (s *ItemQueriesTestSuite) TestProjectItemBookings() {
	h := time.Hour
	s.store(storetest.ItemID, -5*h, -4*h, booking.StatusApproved)
	last := s.store(storetest.ItemID, -h, h, booking.StatusApproved)
	s.store(storetest.ItemID, h, 2*h, booking.StatusWaiting)
	s.store(storetest.ItemID, 2*h, 3*h, booking.StatusRejected)
	next := s.store(storetest.ItemID, 5*h, 6*h, booking.StatusApproved)
	s.store(storetest.ItemID, 9*h, 10*h, booking.StatusApproved)

	s.Run("owner sees last and next approved", func() {
		view, err := s.q.ProjectItemBookings(s.ctx, storetest.ItemID, storetest.OwnerID)
		s.Require().NoError(err)

		expected := &queries.ItemBookingsView{
			ID:          storetest.ItemID,
			OwnerID:     storetest.OwnerID,
			Name:        "Drill",
			Description: "Cordless drill",
			Available:   true,
			LastBooking: short(last),
			NextBooking: short(next),
		}
		if diff := cmp.Diff(expected, view); diff != "" {
			s.T().Errorf("projection mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("other viewers get the item without projections", func() {
		for _, viewer := range []int64{storetest.BookerID, storetest.StrangerID, 999} {
			view, err := s.q.ProjectItemBookings(s.ctx, storetest.ItemID, viewer)
			s.Require().NoError(err)
			s.Equal("Drill", view.Name)
			s.Nil(view.LastBooking)
			s.Nil(view.NextBooking)
		}
	})

	s.Run("missing item", func() {
		view, err := s.q.ProjectItemBookings(s.ctx, 404, storetest.OwnerID)
		s.Nil(view)
		s.True(errs.Is(err, errs.ErrNotFound))
		s.ErrorIs(err, shared.ErrItemNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestProjectionBoundaries() {
	s.Run("approved booking starting now is both last and next", func() {
		atNow := s.store(storetest.ItemID, 0, time.Hour, booking.StatusApproved)

		view, err := s.q.ProjectItemBookings(s.ctx, storetest.ItemID, storetest.OwnerID)
		s.Require().NoError(err)
		s.Equal(short(atNow), view.LastBooking)
		s.Equal(short(atNow), view.NextBooking)
	})

	s.Run("no approved bookings", func() {
		s.store(storetest.UnavailableItemID, time.Hour, 2*time.Hour, booking.StatusWaiting)

		view, err := s.q.ProjectItemBookings(s.ctx, storetest.UnavailableItemID, storetest.OwnerID)
		s.Require().NoError(err)
		s.Nil(view.LastBooking)
		s.Nil(view.NextBooking)
	})
}

func (s *ItemQueriesTestSuite) TestListOwnerItemBookings() {
	next := s.store(storetest.ItemID, 3*time.Hour, 4*time.Hour, booking.StatusApproved)
	s.store(storetest.StrangerItemID, time.Hour, 2*time.Hour, booking.StatusApproved)

	s.Run("every owned item in id order", func() {
		views, err := s.q.ListOwnerItemBookings(s.ctx, storetest.OwnerID)
		s.Require().NoError(err)
		s.Require().Len(views, 2)

		s.Equal(storetest.ItemID, views[0].ID)
		s.Nil(views[0].LastBooking)
		s.Equal(short(next), views[0].NextBooking)

		s.Equal(storetest.UnavailableItemID, views[1].ID)
		s.False(views[1].Available)
		s.Nil(views[1].LastBooking)
		s.Nil(views[1].NextBooking)
	})

	s.Run("user without items", func() {
		views, err := s.q.ListOwnerItemBookings(s.ctx, storetest.BookerID)
		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})

	s.Run("missing owner", func() {
		views, err := s.q.ListOwnerItemBookings(s.ctx, 999)
		s.Nil(views)
		s.True(errs.Is(err, errs.ErrNotFound))
		s.ErrorIs(err, shared.ErrUserNotFound)
	})
}
