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

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, capacity) VALUES ($1, $2, $3)",
		roomID, name, capacity)
	require.NoError(t, err)
	return roomID
}

func CreateTestPriceRange(t *testing.T, db DBLike, roomID uuid.UUID, start, end string, priceCents int64) uuid.UUID {
	t.Helper()

	rangeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO price_ranges (id, room_id, start_date, end_date, price_cents) VALUES ($1, $2, $3::date, $4::date, $5)",
		rangeID, roomID, start, end, priceCents)
	require.NoError(t, err)
	return rangeID
}

func CreateTestBlockRange(t *testing.T, db DBLike, roomID uuid.UUID, start, end, reason string) uuid.UUID {
	t.Helper()

	rangeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO block_ranges (id, room_id, start_date, end_date, reason) VALUES ($1, $2, $3::date, $4::date, $5)",
		rangeID, roomID, start, end, reason)
	require.NoError(t, err)
	return rangeID
}

// CountJobs counts notification jobs of one kind, or of every kind when kind is empty.
func CountJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE $1 = '' OR kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// The schema has no reference data; the hook stays so ResetDB keeps one shape.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
