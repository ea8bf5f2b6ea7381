//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backoffice/internal/domain/guest"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID         uuid.UUID
	RoomID     *uuid.UUID
	Status     string
	FullName   string
	CheckOutAt *time.Time
}

func NewGuestBuilder() *GuestBuilder {
	checkout := Day(2)
	return &GuestBuilder{
		ID:         uuid.New(),
		Status:     string(guest.StatusCheckedIn),
		FullName:   "Ayesha Khan",
		CheckOutAt: &checkout,
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(g.ID, g.RoomID, g.Status, g.FullName, g.CheckOutAt)
}

func (g *GuestBuilder) MustBuild() *guest.Guest {
	gs, err := g.BuildDomain()
	if err != nil {
		panic(err)
	}
	return gs
}

func (g *GuestBuilder) InRoom(roomID uuid.UUID) *GuestBuilder {
	g.RoomID = &roomID
	return g
}

func (g *GuestBuilder) WithoutRoom() *GuestBuilder {
	g.RoomID = nil
	return g
}

func (g *GuestBuilder) WithFullName(name string) *GuestBuilder {
	g.FullName = name
	return g
}

func (g *GuestBuilder) WithCheckOutAt(t time.Time) *GuestBuilder {
	g.CheckOutAt = &t
	return g
}

func (g *GuestBuilder) WithoutCheckOut() *GuestBuilder {
	g.CheckOutAt = nil
	return g
}

func (g *GuestBuilder) AsCheckedOut() *GuestBuilder {
	g.Status = string(guest.StatusCheckedOut)
	return g
}
