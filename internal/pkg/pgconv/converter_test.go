//go:build unit

package pgconv

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTimeConversion(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	local := time.Date(2026, 3, 1, 18, 0, 0, 0, loc)

	pt := TimeToPgtype(local)
	assert.True(t, pt.Valid)
	assert.Equal(t, time.UTC, pt.Time.Location())
	assert.True(t, local.Equal(TimeFromPgtype(pt)))
}

func TestErrorClassification(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation})
	check := &pgconn.PgError{Code: pgCheckViolation}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(check))
	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(fk))
	assert.True(t, IsNoRows(fmt.Errorf("select: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(fk))
}
