package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	DB() db.DBTX
}

type ReservationRepository interface {
	// ApplySwap moves an active reservation to roomID and stay. A nil roomID keeps it unassigned.
	ApplySwap(ctx context.Context, tx db.DBTX, id uuid.UUID, roomID *uuid.UUID, stay reservation.Stay) error
	// ChangeRoom moves an active reservation to roomID keeping its stay.
	ChangeRoom(ctx context.Context, tx db.DBTX, id, roomID uuid.UUID) error
}
