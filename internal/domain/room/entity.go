package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrRoomNumberTooLong = errors.New("room number is too long (max 16 characters)")
)

const (
	MaxRoomNumberLength = 16
)

type Room struct {
	id       uuid.UUID
	number   string
	category string
	bedType  string
	view     string
	rate     Money
	status   Status
}

// NewRoom validates a room read from the inventory. A zero id is replaced by a fresh one.
func NewRoom(id uuid.UUID, number, category, bedType, view string, rate int64, status string) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return nil, ErrRoomNumberTooLong
	}

	money, err := NewRate(rate)
	if err != nil {
		return nil, err
	}

	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Room{
		id:       id,
		number:   number,
		category: strings.TrimSpace(category),
		bedType:  strings.TrimSpace(bedType),
		view:     strings.TrimSpace(view),
		rate:     money,
		status:   st,
	}, nil
}

func (r *Room) IsUnderMaintenance() bool {
	return r.status == StatusMaintenance
}

func (r *Room) ID() uuid.UUID    { return r.id }
func (r *Room) Number() string   { return r.number }
func (r *Room) Category() string { return r.category }
func (r *Room) BedType() string  { return r.bedType }
func (r *Room) View() string     { return r.view }
func (r *Room) Rate() Money      { return r.rate }
func (r *Room) Status() Status   { return r.status }
