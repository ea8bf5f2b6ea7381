package repository

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	lockReservationQuery = `
SELECT room_id, start_at, end_at
FROM reservations
WHERE id = $1 AND status NOT IN ('cancelled', 'checked-out')
FOR UPDATE`

	// Locking the room row serializes concurrent moves into the same room.
	lockRoomQuery = `SELECT room_number, status FROM rooms WHERE id = $1 FOR UPDATE`

	overlapQuery = `
SELECT full_name
FROM reservations
WHERE room_id = $1
  AND id <> $2
  AND status NOT IN ('cancelled', 'checked-out')
  AND start_at < $4
  AND end_at > $3
ORDER BY start_at
LIMIT 1`

	applySwapQuery = `
UPDATE reservations
SET room_id = $2, start_at = $3, end_at = $4, updated_at = NOW()
WHERE id = $1`

	changeRoomQuery = `
UPDATE reservations
SET room_id = $2, updated_at = NOW()
WHERE id = $1`
)

// ReservationRepository performs the authoritative reservation writes. Every method
// runs on the caller's transaction.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// ApplySwap moves the reservation to roomID and the given stay. A nil roomID leaves
// the reservation unassigned.
func (r *ReservationRepository) ApplySwap(ctx context.Context, tx db.DBTX, id uuid.UUID, roomID *uuid.UUID, stay reservation.Stay) error {
	locked, err := r.lock(ctx, tx, id)
	if err != nil {
		return err
	}

	if roomID != nil {
		if err := r.ensureFree(ctx, tx, id, *roomID, !locked.isIn(*roomID), stay.Start(), stay.End()); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, applySwapQuery,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDPtrToPgtype(roomID),
		pgconv.TimeToPgtype(stay.Start()),
		pgconv.TimeToPgtype(stay.End()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to apply swap", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ChangeRoom reassigns the reservation to roomID keeping its dates.
func (r *ReservationRepository) ChangeRoom(ctx context.Context, tx db.DBTX, id, roomID uuid.UUID) error {
	locked, err := r.lock(ctx, tx, id)
	if err != nil {
		return err
	}

	if err := r.ensureFree(ctx, tx, id, roomID, !locked.isIn(roomID), locked.startAt, locked.endAt); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, changeRoomQuery, pgconv.UUIDToPgtype(id), pgconv.UUIDToPgtype(roomID))
	if err != nil {
		return infra.WrapRepoErr("failed to change room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

type lockedReservation struct {
	roomID  *uuid.UUID
	startAt time.Time
	endAt   time.Time
}

func (l lockedReservation) isIn(roomID uuid.UUID) bool {
	return l.roomID != nil && *l.roomID == roomID
}

func (r *ReservationRepository) lock(ctx context.Context, tx db.DBTX, id uuid.UUID) (lockedReservation, error) {
	var roomID pgtype.UUID
	var startAt, endAt pgtype.Timestamptz
	err := tx.QueryRow(ctx, lockReservationQuery, pgconv.UUIDToPgtype(id)).Scan(&roomID, &startAt, &endAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return lockedReservation{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return lockedReservation{}, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return lockedReservation{
		roomID:  pgconv.UUIDPtrFromPgtype(roomID),
		startAt: startAt.Time,
		endAt:   endAt.Time,
	}, nil
}

// ensureFree fails with KindConflict when another active reservation on roomID
// overlaps [from, to). A room under maintenance only accepts reservations that are
// already in it.
func (r *ReservationRepository) ensureFree(ctx context.Context, tx db.DBTX, id, roomID uuid.UUID, moving bool, from, to time.Time) error {
	var roomNumber, status string
	if err := tx.QueryRow(ctx, lockRoomQuery, pgconv.UUIDToPgtype(roomID)).Scan(&roomNumber, &status); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}
	if moving && room.Status(status) == room.StatusMaintenance {
		return infra.WrapRepoErr("room "+roomNumber+" is under maintenance", nil, infra.KindConflict)
	}

	var holder string
	err := tx.QueryRow(ctx, overlapQuery,
		pgconv.UUIDToPgtype(roomID),
		pgconv.UUIDToPgtype(id),
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
	).Scan(&holder)
	switch {
	case err == nil:
		return infra.WrapRepoErr("room "+roomNumber+" is already booked by "+holder+" for these dates", nil, infra.KindConflict)
	case pgconv.IsNoRows(err):
		return nil
	default:
		return infra.WrapRepoErr("failed to check room availability", err)
	}
}
