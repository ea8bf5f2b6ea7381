package readstore

import (
	"context"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/converter"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findReservationByIDQuery = `
SELECT id, room_id, full_name, start_at, end_at, status
FROM reservations
WHERE id = $1`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, findReservationByIDQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.ReservationRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	entity, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation record", err)
	}
	return entity, nil
}
