package queries

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

import (
	"context"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

type SnapshotStore interface {
	// LoadSnapshot reads rooms, checked-in guests and the reservations still relevant
	// at or after since, all from one transaction snapshot.
	LoadSnapshot(ctx context.Context, since time.Time) (*Snapshot, error)
}

type RoomStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindAll(ctx context.Context) ([]*room.Room, error)
}

type ReservationStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type AvailabilityStore interface {
	// FindAvailableRooms lists rooms outside maintenance with no active reservation
	// overlapping [from, to). excludeReservationID ignores the reservation being edited.
	FindAvailableRooms(ctx context.Context, from, to time.Time, excludeReservationID *uuid.UUID) ([]*room.Room, error)
}
