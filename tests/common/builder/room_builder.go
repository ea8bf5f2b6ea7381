//go:build unit || e2e

package builder

import (
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID       uuid.UUID
	Number   string
	Category string
	BedType  string
	View     string
	Rate     int64
	Status   string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       uuid.New(),
		Number:   "101",
		Category: "Deluxe",
		BedType:  "King",
		View:     "Garden",
		Rate:     5000,
		Status:   string(room.StatusAvailable),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.ID, r.Number, r.Category, r.BedType, r.View, r.Rate, r.Status)
}

// MustBuild panics on invalid fixtures; tests only.
func (r *RoomBuilder) MustBuild() *room.Room {
	rm, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return rm
}

// Fluent builder methods
func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithRate(rate int64) *RoomBuilder {
	r.Rate = rate
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}

func (r *RoomBuilder) AsMaintenance() *RoomBuilder {
	r.Status = string(room.StatusMaintenance)
	return r
}
