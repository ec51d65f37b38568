//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	t.Run("only approved bookings count", func(t *testing.T) {
		now := builder.BaseTime
		bookings := []*booking.Booking{
			builder.NewBookingBuilder().WithID(1).StartingIn(-2*time.Hour, 30*time.Minute).AsApproved().BuildStored(),
			builder.NewBookingBuilder().WithID(2).StartingIn(-time.Hour, 30*time.Minute).BuildStored(),
			builder.NewBookingBuilder().WithID(3).StartingIn(time.Hour, 30*time.Minute).AsApproved().BuildStored(),
			builder.NewBookingBuilder().WithID(4).StartingIn(2*time.Hour, 30*time.Minute).AsRejected().BuildStored(),
		}

		p := booking.Project(bookings, now)
		require.NotNil(t, p.Last)
		require.NotNil(t, p.Next)
		assert.Equal(t, int64(1), p.Last.ID())
		assert.Equal(t, int64(3), p.Next.ID())
	})

	t.Run("picks closest on each side", func(t *testing.T) {
		bookings := []*booking.Booking{
			builder.NewBookingBuilder().WithID(1).StartingIn(-5*time.Hour, time.Hour).AsApproved().BuildStored(),
			builder.NewBookingBuilder().WithID(2).StartingIn(-30*time.Minute, time.Hour).AsApproved().BuildStored(),
			builder.NewBookingBuilder().WithID(3).StartingIn(4*time.Hour, time.Hour).AsApproved().BuildStored(),
			builder.NewBookingBuilder().WithID(4).StartingIn(90*time.Minute, time.Hour).AsApproved().BuildStored(),
		}

		p := booking.Project(bookings, builder.BaseTime)
		assert.Equal(t, int64(2), p.Last.ID())
		assert.Equal(t, int64(4), p.Next.ID())
	})

	t.Run("start exactly now is both last and next", func(t *testing.T) {
		b := builder.NewBookingBuilder().StartingIn(0, time.Hour).AsApproved().BuildStored()

		p := booking.Project([]*booking.Booking{b}, builder.BaseTime)
		assert.Same(t, b, p.Last)
		assert.Same(t, b, p.Next)
	})

	t.Run("nothing approved", func(t *testing.T) {
		b := builder.NewBookingBuilder().StartingIn(time.Hour, time.Hour).BuildStored()

		p := booking.Project([]*booking.Booking{b}, builder.BaseTime)
		assert.Nil(t, p.Last)
		assert.Nil(t, p.Next)
		assert.Equal(t, booking.Projection{}, booking.Project(nil, builder.BaseTime))
	})
}
