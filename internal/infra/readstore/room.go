package readstore

import (
	"context"

	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/converter"
	"hotel-backoffice/internal/infra/db"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findRoomByIDQuery = `
SELECT id, room_number, category, bed_type, view, rate, status
FROM rooms
WHERE id = $1`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rows, err := r.db.Query(ctx, findRoomByIDQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[converter.RoomRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	entity, err := converter.RoomToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room record", err)
	}
	return entity, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*room.Room, error) {
	return listRooms(ctx, r.db)
}
