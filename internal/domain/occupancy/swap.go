package occupancy

import (
	"errors"
	"slices"
	"strings"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrNoChanges        = errors.New("no changes to apply")
	ErrInvalidDateRange = errors.New("checkout must be after checkin")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrMissingBooking   = errors.New("reservation is required")
)

// SwapInput is one submission of the swap form. An empty NewRoomID, Checkin or
// Checkout keeps the reservation's current value.
type SwapInput struct {
	Reservation  *reservation.Reservation
	NewRoomID    uuid.UUID
	Checkin      string
	Checkout     string
	CurrentRoom  *room.Room
	SelectedRoom *room.Room
}

// SwapDelta holds only the fields that differ from the reservation.
type SwapDelta struct {
	NewRoomID   *uuid.UUID
	NewCheckin  *string
	NewCheckout *string
}

func (d SwapDelta) IsEmpty() bool {
	return d.NewRoomID == nil && d.NewCheckin == nil && d.NewCheckout == nil
}

type CostProjection struct {
	CurrentNights   int
	NewNights       int
	CurrentEstimate room.Money
	NewEstimate     room.Money
	Difference      room.Money
}

type SwapPlan struct {
	Delta SwapDelta
	Cost  CostProjection
	// Checkin and Checkout are the resulting dates in the calendar zone, local midnight.
	Checkin  time.Time
	Checkout time.Time
	// StartAt and EndAt are the resulting stay. A moved date keeps the original local
	// time of day; an unchanged one keeps the original instant.
	StartAt time.Time
	EndAt   time.Time
}

// ComputeSwap validates a swap submission and projects its cost. Validation fails fast:
// an empty delta is ErrNoChanges before the date order is checked.
func (c Calendar) ComputeSwap(in SwapInput) (SwapPlan, error) {
	if in.Reservation == nil {
		return SwapPlan{}, ErrMissingBooking
	}

	originalCheckin := c.DateString(in.Reservation.StartAt())
	originalCheckout := c.DateString(in.Reservation.EndAt())

	checkin := strings.TrimSpace(in.Checkin)
	if checkin == "" {
		checkin = originalCheckin
	}
	checkout := strings.TrimSpace(in.Checkout)
	if checkout == "" {
		checkout = originalCheckout
	}

	var delta SwapDelta
	if in.NewRoomID != uuid.Nil && !in.Reservation.IsForRoom(in.NewRoomID) {
		id := in.NewRoomID
		delta.NewRoomID = &id
	}
	if checkin != originalCheckin {
		delta.NewCheckin = &checkin
	}
	if checkout != originalCheckout {
		delta.NewCheckout = &checkout
	}

	if delta.IsEmpty() {
		return SwapPlan{}, ErrNoChanges
	}

	checkinAt, err := c.ParseDate(checkin)
	if err != nil {
		return SwapPlan{}, ErrInvalidDate
	}
	checkoutAt, err := c.ParseDate(checkout)
	if err != nil {
		return SwapPlan{}, ErrInvalidDate
	}
	if !checkoutAt.After(checkinAt) {
		return SwapPlan{}, ErrInvalidDateRange
	}

	selected := in.SelectedRoom
	if selected == nil || delta.NewRoomID == nil {
		selected = in.CurrentRoom
	}

	startAt, endAt := in.Reservation.StartAt(), in.Reservation.EndAt()
	if delta.NewCheckin != nil {
		startAt = c.onDate(checkinAt, startAt)
	}
	if delta.NewCheckout != nil {
		endAt = c.onDate(checkoutAt, endAt)
	}

	return SwapPlan{
		Delta:    delta,
		Cost:     projectCost(in.Reservation, in.CurrentRoom, selected, checkinAt, checkoutAt),
		Checkin:  checkinAt,
		Checkout: checkoutAt,
		StartAt:  startAt,
		EndAt:    endAt,
	}, nil
}

func (c Calendar) onDate(date, clockOf time.Time) time.Time {
	loc := c.Location()
	local := clockOf.In(loc)
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
}

func projectCost(res *reservation.Reservation, current, selected *room.Room, checkin, checkout time.Time) CostProjection {
	currentNights := NightsBetween(res.StartAt(), res.EndAt())
	newNights := NightsBetween(checkin, checkout)

	currentEstimate := rateOf(current).Times(currentNights)
	newEstimate := rateOf(selected).Times(newNights)

	return CostProjection{
		CurrentNights:   currentNights,
		NewNights:       newNights,
		CurrentEstimate: currentEstimate,
		NewEstimate:     newEstimate,
		Difference:      newEstimate.Sub(currentEstimate),
	}
}

// a room missing from the loaded set contributes nothing to an estimate
func rateOf(r *room.Room) room.Money {
	if r == nil {
		return room.NewMoney(0)
	}
	return r.Rate()
}

// ChangeRoomCandidates lists the rooms a reservation may be moved to: everything not
// under maintenance except the room it already holds, ordered by room number.
func ChangeRoomCandidates(rooms []*room.Room, currentRoomID *uuid.UUID) []*room.Room {
	out := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if r == nil || r.IsUnderMaintenance() {
			continue
		}
		if currentRoomID != nil && r.ID() == *currentRoomID {
			continue
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b *room.Room) int {
		return strings.Compare(a.Number(), b.Number())
	})
	return out
}
