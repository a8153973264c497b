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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProperty(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO properties (code, name, timezone) VALUES ($1, $2, 'UTC') RETURNING id`,
		code, "Hotel "+code).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoomType(t *testing.T, db DBLike, propertyID uuid.UUID, code string, maxOccupancy int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO room_types (property_id, code, name, base_occupancy, max_occupancy)
		 VALUES ($1, $2, $3, 1, $4) RETURNING id`,
		propertyID, code, "Room type "+code, maxOccupancy).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, propertyID, roomTypeID uuid.UUID, code string, priceCents int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO rooms (property_id, room_type_id, code, base_price_per_night_cents)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		propertyID, roomTypeID, code, priceCents).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestGuest(t *testing.T, db DBLike, propertyID uuid.UUID, firstName, lastName string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO guests (property_id, first_name, last_name) VALUES ($1, $2, $3) RETURNING id`,
		propertyID, firstName, lastName).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
