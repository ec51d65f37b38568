package pgquery

import (
	"context"
)

const getItemByID = `
SELECT id, owner_id, name, description, available, created_at
FROM items
WHERE id = $1`

func (q *Queries) GetItemByID(ctx context.Context, db DBTX, id int64) (Items, error) {
	row := db.QueryRow(ctx, getItemByID, id)
	var i Items
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Available,
		&i.CreatedAt,
	)
	return i, err
}

const listItemsByOwner = `
SELECT id, owner_id, name, description, available, created_at
FROM items
WHERE owner_id = $1
ORDER BY id`

func (q *Queries) ListItemsByOwner(ctx context.Context, db DBTX, ownerID int64) ([]Items, error) {
	return q.listItems(ctx, db, listItemsByOwner, ownerID)
}

const listItemsByIDs = `
SELECT id, owner_id, name, description, available, created_at
FROM items
WHERE id = ANY($1::bigint[])
ORDER BY id`

func (q *Queries) ListItemsByIDs(ctx context.Context, db DBTX, ids []int64) ([]Items, error) {
	return q.listItems(ctx, db, listItemsByIDs, ids)
}

func (q *Queries) listItems(ctx context.Context, db DBTX, query string, arg any) ([]Items, error) {
	rows, err := db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Items{}
	for rows.Next() {
		var i Items
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Name,
			&i.Description,
			&i.Available,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
