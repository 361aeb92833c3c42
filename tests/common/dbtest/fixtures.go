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

// BreederFixture describes a seeded breeder and its single appointment type.
type BreederFixture struct {
	BreederID         uuid.UUID
	AppointmentTypeID uuid.UUID
}

// CreateTestBreeder seeds a breeder with weekday 09:00-12:00 availability
// and one enabled 30-minute appointment type with the given buffers.
func CreateTestBreeder(t *testing.T, db DBLike, name string, bufferBefore, bufferAfter int) BreederFixture {
	t.Helper()
	ctx := context.Background()

	breederID := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO breeders (id, name, booking_page_enabled, min_advance_booking_hours, max_advance_booking_days, slot_interval_minutes)
		VALUES ($1, $2, true, 24, 30, 30)`,
		breederID, name)
	require.NoError(t, err)

	typeID := uuid.New()
	_, err = db.Exec(ctx, `
		INSERT INTO appointment_types (id, breeder_id, name, duration_minutes, buffer_before_minutes, buffer_after_minutes, enabled)
		VALUES ($1, $2, 'Puppy Visit', 30, $3, $4, true)`,
		typeID, breederID, bufferBefore, bufferAfter)
	require.NoError(t, err)

	// Monday through Friday mornings
	for day := 0; day < 5; day++ {
		_, err = db.Exec(ctx, `
			INSERT INTO availability_ranges (id, breeder_id, day_of_week, start_minute, end_minute, position)
			VALUES ($1, $2, $3, 540, 720, 0)`,
			uuid.New(), breederID, day)
		require.NoError(t, err)
	}

	return BreederFixture{BreederID: breederID, AppointmentTypeID: typeID}
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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
	return nil
}
