package converter

import (
	"hotel-backoffice/internal/domain/guest"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func RoomToDomain(row RoomRow) (*room.Room, error) {
	return room.NewRoom(
		uuid.UUID(row.ID.Bytes),
		row.RoomNumber,
		row.Category,
		row.BedType,
		row.View,
		row.Rate,
		row.Status,
	)
}

func GuestToDomain(row GuestRow) (*guest.Guest, error) {
	return guest.NewGuest(
		uuid.UUID(row.ID.Bytes),
		pgconv.UUIDPtrFromPgtype(row.RoomID),
		row.Status,
		row.FullName,
		pgconv.TimePtrFromPgtype(row.CheckOutAt),
	)
}

// ReservationToDomain keeps rows with an empty or inverted window; the occupancy engine
// skips them. Only an unknown status is rejected.
func ReservationToDomain(row ReservationRow) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		uuid.UUID(row.ID.Bytes),
		pgconv.UUIDPtrFromPgtype(row.RoomID),
		row.FullName,
		row.StartAt.Time,
		row.EndAt.Time,
		status,
	), nil
}
