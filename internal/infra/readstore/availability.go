package readstore

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/converter"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findAvailableRoomsQuery = `
SELECT r.id, r.room_number, r.category, r.bed_type, r.view, r.rate, r.status
FROM rooms r
WHERE r.status <> 'maintenance'
  AND NOT EXISTS (
    SELECT 1
    FROM reservations res
    WHERE res.room_id = r.id
      AND res.status NOT IN ('cancelled', 'checked-out')
      AND res.start_at < $2
      AND res.end_at > $1
      AND ($3::uuid IS NULL OR res.id <> $3)
  )
ORDER BY r.room_number`

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (a *AvailabilityReadStore) FindAvailableRooms(ctx context.Context, from, to time.Time, excludeReservationID *uuid.UUID) ([]*room.Room, error) {
	rows, err := a.db.Query(ctx, findAvailableRoomsQuery,
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
		pgconv.UUIDPtrToPgtype(excludeReservationID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.RoomRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan available rooms", err)
	}
	return collect(ctx, "room", records, converter.RoomToDomain), nil
}
