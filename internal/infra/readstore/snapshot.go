package readstore

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/guest"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/converter"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const (
	listRoomsQuery = `
SELECT id, room_number, category, bed_type, view, rate, status
FROM rooms
ORDER BY room_number`

	listCheckedInGuestsQuery = `
SELECT id, room_id, full_name, status, check_out_at
FROM guests
WHERE status = 'checked-in'
ORDER BY created_at, id`

	listRelevantReservationsQuery = `
SELECT id, room_id, full_name, start_at, end_at, status
FROM reservations
WHERE status NOT IN ('cancelled', 'checked-out')
  AND end_at > $1
ORDER BY start_at, id`
)

type SnapshotReadStore struct {
	uow shared.UnitOfWork
}

func NewSnapshotReadStore(uow shared.UnitOfWork) *SnapshotReadStore {
	return &SnapshotReadStore{uow: uow}
}

// LoadSnapshot reads the three collections inside one read-only transaction. Rows the
// domain rejects are logged and skipped so one bad record cannot hide the dashboard.
func (s *SnapshotReadStore) LoadSnapshot(ctx context.Context, since time.Time) (*queries.Snapshot, error) {
	var snap queries.Snapshot
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if snap.Rooms, err = listRooms(ctx, tx); err != nil {
			return err
		}
		if snap.Guests, err = listCheckedInGuests(ctx, tx); err != nil {
			return err
		}
		snap.Reservations, err = listRelevantReservations(ctx, tx, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func listRooms(ctx context.Context, tx db.DBTX) ([]*room.Room, error) {
	rows, err := tx.Query(ctx, listRoomsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.RoomRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rooms", err)
	}
	return collect(ctx, "room", records, converter.RoomToDomain), nil
}

func listCheckedInGuests(ctx context.Context, tx db.DBTX) ([]*guest.Guest, error) {
	rows, err := tx.Query(ctx, listCheckedInGuestsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.GuestRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan guests", err)
	}
	return collect(ctx, "guest", records, converter.GuestToDomain), nil
}

func listRelevantReservations(ctx context.Context, tx db.DBTX, since time.Time) ([]*reservation.Reservation, error) {
	rows, err := tx.Query(ctx, listRelevantReservationsQuery, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ReservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return collect(ctx, "reservation", records, converter.ReservationToDomain), nil
}

func collect[R any, T any](ctx context.Context, kind string, records []R, toDomain func(R) (T, error)) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := toDomain(rec)
		if err != nil {
			slog.WarnContext(ctx, "skipping invalid record",
				slog.String("kind", kind),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, v)
	}
	return out
}
