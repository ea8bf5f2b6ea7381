package guest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFullName = errors.New("guest full name cannot be empty")
	ErrInvalidStatus = errors.New("invalid guest status")
)

type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// Guest is an occupancy record. At most one checked-in guest per room is guaranteed by the
// booking system and is not re-checked here.
type Guest struct {
	id         uuid.UUID
	roomID     *uuid.UUID
	status     Status
	fullName   string
	checkOutAt *time.Time
}

func NewGuest(id uuid.UUID, roomID *uuid.UUID, status, fullName string, checkOutAt *time.Time) (*Guest, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Guest{
		id:         id,
		roomID:     roomID,
		status:     st,
		fullName:   fullName,
		checkOutAt: checkOutAt,
	}, nil
}

func (g *Guest) IsCheckedIn() bool {
	return g.status == StatusCheckedIn
}

// Occupies reports whether the guest is currently checked in to the given room.
// A guest without a room assignment occupies nothing.
func (g *Guest) Occupies(roomID uuid.UUID) bool {
	return g.IsCheckedIn() && g.roomID != nil && *g.roomID == roomID
}

func (g *Guest) ID() uuid.UUID          { return g.id }
func (g *Guest) RoomID() *uuid.UUID     { return g.roomID }
func (g *Guest) Status() Status         { return g.status }
func (g *Guest) FullName() string       { return g.fullName }
func (g *Guest) CheckOutAt() *time.Time { return g.checkOutAt }
