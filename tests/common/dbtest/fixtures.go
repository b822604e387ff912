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

// bcrypt hash of "password123"; every seeded staff member shares it.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO staff (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		staffID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestRoom(t *testing.T, db DBLike, number string, rateCents int64, capacity int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO rooms (id, number, rate_cents, capacity, room_type) VALUES ($1, $2, $3, $4, 'double') ON CONFLICT (number) DO NOTHING",
		roomID, number, rateCents, capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE number = $1", number).Scan(&roomID)
	}

	return roomID
}

func CreateTestGuest(t *testing.T, db DBLike, firstName, lastName, email string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO guests (id, first_name, last_name, email, locale) VALUES ($1, $2, $3, $4, 'en') ON CONFLICT (email) DO NOTHING",
		guestID, firstName, lastName, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM guests WHERE email = $1", email).Scan(&guestID)
	}

	return guestID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff (id, email, password_hash, role, is_active) VALUES
		    (gen_random_uuid(), 'manager@example.com', '`+testPasswordHash+`', 'manager', true),
		    (gen_random_uuid(), 'admin@example.com', '`+testPasswordHash+`', 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

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
