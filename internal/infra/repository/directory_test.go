//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/pgquery"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemQueries struct {
	mock.Mock
}

func (m *MockItemQueries) GetItemByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Items, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.Items), args.Error(1)
}

func (m *MockItemQueries) ListItemsByOwner(ctx context.Context, db pgquery.DBTX, ownerID int64) ([]pgquery.Items, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).([]pgquery.Items), args.Error(1)
}

func (m *MockItemQueries) ListItemsByIDs(ctx context.Context, db pgquery.DBTX, ids []int64) ([]pgquery.Items, error) {
	args := m.Called(ctx, db, ids)
	return args.Get(0).([]pgquery.Items), args.Error(1)
}

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) GetUserByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.Users), args.Error(1)
}

func (m *MockUserQueries) UserExists(ctx context.Context, db pgquery.DBTX, id int64) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func TestItemDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("find by id", func(t *testing.T) {
		mockQueries := new(MockItemQueries)
		mockQueries.On("GetItemByID", mock.Anything, mock.Anything, int64(10)).
			Return(pgquery.Items{ID: 10, OwnerID: 1, Name: "Drill", Available: true}, nil)
		mockQueries.On("GetItemByID", mock.Anything, mock.Anything, int64(11)).
			Return(pgquery.Items{}, pgx.ErrNoRows)

		dir := NewItemDirectory(mockQueries, nil)
		it, err := dir.FindByID(ctx, 10)
		require.NoError(t, err)
		assert.True(t, it.IsOwnedBy(1))

		_, err = dir.FindByID(ctx, 11)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list by owner", func(t *testing.T) {
		mockQueries := new(MockItemQueries)
		mockQueries.On("ListItemsByOwner", mock.Anything, mock.Anything, int64(1)).
			Return([]pgquery.Items{{ID: 10, OwnerID: 1, Name: "Drill"}, {ID: 12, OwnerID: 1, Name: "Saw"}}, nil)

		items, err := NewItemDirectory(mockQueries, nil).ListByOwner(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Saw", items[1].Name())
	})

	t.Run("find by ids skips empty input", func(t *testing.T) {
		mockQueries := new(MockItemQueries)
		items, err := NewItemDirectory(mockQueries, nil).FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, items)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockItemQueries)
		mockQueries.On("ListItemsByIDs", mock.Anything, mock.Anything, []int64{1}).Return([]pgquery.Items(nil), assert.AnError)

		_, err := NewItemDirectory(mockQueries, nil).FindByIDs(ctx, []int64{1})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserDirectory(t *testing.T) {
	ctx := context.Background()
	mockQueries := new(MockUserQueries)
	mockQueries.On("GetUserByID", mock.Anything, mock.Anything, int64(1)).
		Return(pgquery.Users{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)
	mockQueries.On("GetUserByID", mock.Anything, mock.Anything, int64(2)).
		Return(pgquery.Users{}, pgx.ErrNoRows)
	mockQueries.On("UserExists", mock.Anything, mock.Anything, int64(3)).Return(false, nil)
	mockQueries.On("UserExists", mock.Anything, mock.Anything, int64(4)).Return(false, assert.AnError)

	dir := NewUserDirectory(mockQueries, nil)

	u, err := dir.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name())

	_, err = dir.FindByID(ctx, 2)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	ok, err := dir.Exists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = dir.Exists(ctx, 4)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	mockQueries.AssertExpectations(t)
}
