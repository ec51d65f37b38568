package pgquery

import (
	"context"
)

const getUserByID = `
SELECT id, name, email, created_at
FROM users
WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id int64) (Users, error) {
	row := db.QueryRow(ctx, getUserByID, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.CreatedAt,
	)
	return i, err
}

const userExists = `
SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

func (q *Queries) UserExists(ctx context.Context, db DBTX, id int64) (bool, error) {
	row := db.QueryRow(ctx, userExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
