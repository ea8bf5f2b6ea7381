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

type RoomRow struct {
	Number string
	Rate   int64
	Status string
}

func InsertRoom(t *testing.T, db DBLike, r RoomRow) uuid.UUID {
	t.Helper()

	if r.Status == "" {
		r.Status = "available"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, room_number, category, bed_type, view, rate, status)
		 VALUES ($1, $2, 'Deluxe', 'King', 'City', $3, $4)`,
		id, r.Number, r.Rate, r.Status)
	require.NoError(t, err)
	return id
}

func InsertCheckedInGuest(t *testing.T, db DBLike, roomID uuid.UUID, fullName string, checkOutAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO guests (id, room_id, full_name, status, check_out_at) VALUES ($1, $2, $3, 'checked-in', $4)`,
		id, roomID, fullName, checkOutAt)
	require.NoError(t, err)
	return id
}

type ReservationRow struct {
	RoomID   *uuid.UUID
	FullName string
	StartAt  time.Time
	EndAt    time.Time
	Status   string
}

func InsertReservation(t *testing.T, db DBLike, r ReservationRow) uuid.UUID {
	t.Helper()

	if r.Status == "" {
		r.Status = "confirmed"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, room_id, full_name, start_at, end_at, status) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, r.RoomID, r.FullName, r.StartAt, r.EndAt, r.Status)
	require.NoError(t, err)
	return id
}

// reads back the stored window and room of a reservation
func ReservationState(t *testing.T, db DBLike, id uuid.UUID) (roomID *uuid.UUID, startAt, endAt time.Time) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		`SELECT room_id, start_at, end_at FROM reservations WHERE id = $1`, id).Scan(&roomID, &startAt, &endAt)
	require.NoError(t, err)
	return roomID, startAt, endAt
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
