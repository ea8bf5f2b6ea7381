//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID       uuid.UUID
	RoomID   *uuid.UUID
	FullName string
	StartAt  time.Time
	EndAt    time.Time
	Status   reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       uuid.New(),
		FullName: "Bilal Ahmed",
		StartAt:  Day(3),
		EndAt:    Day(5),
		Status:   reservation.StatusConfirmed,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build reconstructs without validation so malformed windows can be exercised.
func (r *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(r.ID, r.RoomID, r.FullName, r.StartAt, r.EndAt, r.Status)
}

func (r *ReservationBuilder) ForRoom(roomID uuid.UUID) *ReservationBuilder {
	r.RoomID = &roomID
	return r
}

func (r *ReservationBuilder) WithoutRoom() *ReservationBuilder {
	r.RoomID = nil
	return r
}

func (r *ReservationBuilder) WithFullName(name string) *ReservationBuilder {
	r.FullName = name
	return r
}

func (r *ReservationBuilder) Between(start, end time.Time) *ReservationBuilder {
	r.StartAt = start
	r.EndAt = end
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}
