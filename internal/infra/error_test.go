//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	low := errors.New("connection reset")

	err := WrapRepoErr("failed to list bookings", low)
	assert.True(t, IsKind(err, KindDBFailure))
	assert.False(t, IsKind(err, KindNotFound))
	assert.ErrorIs(t, err, low)
	assert.Equal(t, "DB_FAILURE: failed to list bookings: failed to list bookings: connection reset", err.Error())

	nf := WrapRepoErr("booking not found", nil, KindNotFound)
	assert.True(t, IsKind(fmt.Errorf("outer: %w", nf), KindNotFound))
	assert.Equal(t, "NOT_FOUND: booking not found", nf.Error())

	assert.False(t, IsKind(low, KindDBFailure))
}
