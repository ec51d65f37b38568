//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.True(t, actual.End().After(actual.Start()))
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("interval validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start equal to now accepted",
				mutate: func(b *builder.BookingBuilder) { b.StartingIn(0, time.Hour) },
			},
			{
				name:   "start one microsecond in the past",
				mutate: func(b *builder.BookingBuilder) { b.StartingIn(-time.Microsecond, time.Hour) },
				errIs:  booking.ErrStartInPast,
			},
			{
				name:   "end equal to start",
				mutate: func(b *builder.BookingBuilder) { b.StartingIn(time.Hour, 0) },
				errIs:  booking.ErrEndNotAfterStart,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.StartingIn(time.Hour, -time.Minute) },
				errIs:  booking.ErrEndNotAfterStart,
			},
			{
				name: "end before start in the past reports ordering first",
				mutate: func(b *builder.BookingBuilder) {
					b.WithSlot(b.Now.Add(-time.Hour), b.Now.Add(-2*time.Hour))
				},
				errIs: booking.ErrEndNotAfterStart,
			},
		})
	})

	t.Run("times normalized to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		b := builder.NewBookingBuilder()
		b.WithSlot(b.Now.Add(time.Hour).In(jst), b.Now.Add(2*time.Hour).In(jst))

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, actual.Start().Location())
		assert.True(t, b.Start.Equal(actual.Start()))
	})
}

func TestBooking_Decide(t *testing.T) {
	now := builder.BaseTime.Add(time.Minute)

	cases := []struct {
		name    string
		status  booking.Status
		approve bool
		want    booking.Status
		errIs   error
	}{
		{name: "approve waiting", status: booking.StatusWaiting, approve: true, want: booking.StatusApproved},
		{name: "reject waiting", status: booking.StatusWaiting, approve: false, want: booking.StatusRejected},
		{name: "approve approved", status: booking.StatusApproved, approve: true, errIs: booking.ErrAlreadyApproved},
		{name: "reject approved", status: booking.StatusApproved, approve: false, errIs: booking.ErrAlreadyApproved},
		{name: "approve rejected", status: booking.StatusRejected, approve: true, errIs: booking.ErrAlreadyDecided},
		{name: "reject rejected", status: booking.StatusRejected, approve: false, errIs: booking.ErrAlreadyDecided},
		{name: "approve cancelled", status: booking.StatusCancelled, approve: true, errIs: booking.ErrAlreadyDecided},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.status).BuildStored()
			before := *b

			err := b.Decide(tc.approve, now)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.status, b.Status())
				if diff := cmp.Diff(before, *b, cmp.AllowUnexported(booking.Booking{}, booking.TimeSlot{})); diff != "" {
					t.Errorf("rejected decision mutated booking (-want +got):\n%s", diff)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.Status())
			assert.Equal(t, now, b.UpdatedAt())
		})
	}
}

func TestBooking_DecidedOnlyOnce(t *testing.T) {
	b := builder.NewBookingBuilder().BuildStored()

	require.NoError(t, b.Decide(false, builder.BaseTime))
	for _, approve := range []bool{true, false} {
		assert.Error(t, b.Decide(approve, builder.BaseTime))
	}
	assert.Equal(t, booking.StatusRejected, b.Status())
}

func TestStatus(t *testing.T) {
	st, err := booking.ParseStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusApproved, st)

	_, err = booking.ParseStatus("approved")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	assert.True(t, booking.StatusWaiting.CanTransitionTo(booking.StatusApproved))
	assert.True(t, booking.StatusWaiting.CanTransitionTo(booking.StatusRejected))
	assert.False(t, booking.StatusWaiting.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusApproved.CanTransitionTo(booking.StatusRejected))
	assert.False(t, booking.StatusRejected.CanTransitionTo(booking.StatusWaiting))
	assert.True(t, booking.StatusRejected.IsDecided())
	assert.False(t, booking.StatusCancelled.IsDecided())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
