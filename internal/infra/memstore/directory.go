package memstore

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
)

type ItemDirectory struct {
	store *Store
}

func NewItemDirectory(store *Store) *ItemDirectory {
	return &ItemDirectory{store: store}
}

func (d *ItemDirectory) FindByID(_ context.Context, id int64) (*item.Item, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	it, ok := d.store.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return it, nil
}

// FindByIDs skips unknown ids.
func (d *ItemDirectory) FindByIDs(_ context.Context, ids []int64) ([]*item.Item, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	out := make([]*item.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := d.store.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (d *ItemDirectory) ListByOwner(_ context.Context, ownerID int64) ([]*item.Item, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	ids := d.store.itemsByOwner[ownerID]
	out := make([]*item.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.store.items[id])
	}
	return out, nil
}

type UserDirectory struct {
	store *Store
}

func NewUserDirectory(store *Store) *UserDirectory {
	return &UserDirectory{store: store}
}

func (d *UserDirectory) FindByID(_ context.Context, id int64) (*user.User, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	u, ok := d.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (d *UserDirectory) Exists(_ context.Context, id int64) (bool, error) {
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	_, ok := d.store.users[id]
	return ok, nil
}
