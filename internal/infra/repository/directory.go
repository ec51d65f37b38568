package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/pgquery"
	"shareit/internal/pkg/pgconv"
)

type ItemQueries interface {
	GetItemByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Items, error)
	ListItemsByOwner(ctx context.Context, db pgquery.DBTX, ownerID int64) ([]pgquery.Items, error)
	ListItemsByIDs(ctx context.Context, db pgquery.DBTX, ids []int64) ([]pgquery.Items, error)
}

type ItemDirectory struct {
	queries ItemQueries
	db      pgquery.DBTX
}

func NewItemDirectory(queries ItemQueries, db pgquery.DBTX) *ItemDirectory {
	return &ItemDirectory{queries: queries, db: db}
}

func (d *ItemDirectory) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	row, err := d.queries.GetItemByID(ctx, d.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	it, err := toItem(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt item row", err)
	}
	return it, nil
}

func (d *ItemDirectory) FindByIDs(ctx context.Context, ids []int64) ([]*item.Item, error) {
	if len(ids) == 0 {
		return []*item.Item{}, nil
	}
	rows, err := d.queries.ListItemsByIDs(ctx, d.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find items by IDs", err)
	}
	items, err := toItems(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt item row", err)
	}
	return items, nil
}

func (d *ItemDirectory) ListByOwner(ctx context.Context, ownerID int64) ([]*item.Item, error) {
	rows, err := d.queries.ListItemsByOwner(ctx, d.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	items, err := toItems(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt item row", err)
	}
	return items, nil
}

type UserQueries interface {
	GetUserByID(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Users, error)
	UserExists(ctx context.Context, db pgquery.DBTX, id int64) (bool, error)
}

type UserDirectory struct {
	queries UserQueries
	db      pgquery.DBTX
}

func NewUserDirectory(queries UserQueries, db pgquery.DBTX) *UserDirectory {
	return &UserDirectory{queries: queries, db: db}
}

func (d *UserDirectory) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := d.queries.GetUserByID(ctx, d.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := toUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err)
	}
	return u, nil
}

func (d *UserDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := d.queries.UserExists(ctx, d.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}
