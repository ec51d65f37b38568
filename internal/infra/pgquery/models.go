package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID        int64              `json:"id"`
	ItemID    int64              `json:"item_id"`
	BookerID  int64              `json:"booker_id"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Items struct {
	ID          int64              `json:"id"`
	OwnerID     int64              `json:"owner_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Users struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
