package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFullName = errors.New("reservation full name cannot be empty")
	ErrInvalidStatus = errors.New("invalid reservation status")
)

type Reservation struct {
	id       uuid.UUID
	roomID   *uuid.UUID
	fullName string
	stay     Stay
	status   Status
}

// NewReservation validates a booking before it is handed to the booking system.
func NewReservation(roomID *uuid.UUID, fullName string, stay Stay, status string) (*Reservation, error) {
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if !stay.IsValid() {
		return nil, ErrInvalidStay
	}

	return &Reservation{
		id:       uuid.New(),
		roomID:   roomID,
		fullName: fullName,
		stay:     stay,
		status:   st,
	}, nil
}

// ReconstructReservation rebuilds a stored booking without validating its window.
// Records with end <= start are kept so read paths can skip them instead of failing.
func ReconstructReservation(
	id uuid.UUID,
	roomID *uuid.UUID,
	fullName string,
	startAt, endAt time.Time,
	status Status,
) *Reservation {
	return &Reservation{
		id:       id,
		roomID:   roomID,
		fullName: fullName,
		stay:     Stay{start: startAt, end: endAt},
		status:   status,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) AwaitsArrival() bool {
	return r.status.AwaitsArrival()
}

func (r *Reservation) HasValidStay() bool {
	return r.stay.IsValid()
}

func (r *Reservation) IsForRoom(roomID uuid.UUID) bool {
	return r.roomID != nil && *r.roomID == roomID
}

func (r *Reservation) ID() uuid.UUID      { return r.id }
func (r *Reservation) RoomID() *uuid.UUID { return r.roomID }
func (r *Reservation) FullName() string   { return r.fullName }
func (r *Reservation) Stay() Stay         { return r.stay }
func (r *Reservation) StartAt() time.Time { return r.stay.start }
func (r *Reservation) EndAt() time.Time   { return r.stay.end }
func (r *Reservation) Status() Status     { return r.status }
