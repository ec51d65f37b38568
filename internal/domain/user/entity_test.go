//go:build unit

package user_test

import (
	"testing"

	"shareit/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		email, err := user.NewEmail("  Alice@Example.com ")
		require.NoError(t, err)

		actual, err := user.NewUser(1, " Alice ", email)
		require.NoError(t, err)

		assert.Equal(t, int64(1), actual.ID())
		assert.Equal(t, "Alice", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
	})

	t.Run("empty name", func(t *testing.T) {
		email, _ := user.NewEmail("bob@example.com")
		actual, err := user.NewUser(2, "   ", email)
		require.Nil(t, actual)
		require.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("email validation", func(t *testing.T) {
		for _, in := range []string{"", "invalid-email", "invalidemail.com", "a@b"} {
			_, err := user.NewEmail(in)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, in)
		}
	})
}
