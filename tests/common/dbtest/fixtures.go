//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestItem(t *testing.T, db DBLike, ownerID int64, name string, available bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO items (owner_id, name, description, available) VALUES ($1, $2, $3, $4) RETURNING id",
		ownerID, name, name+" for rent", available).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestBooking writes a booking directly, bypassing the start-in-the-past check so past and
// current bookings can be arranged.
func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (item_id, booker_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		itemID, bookerID, start, end, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, bookingID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts id sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
