package occupancy

import (
	"cmp"
	"slices"
	"time"

	"hotel-backoffice/internal/domain/guest"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

// ResolveRoomState classifies one room. The checks form a priority chain and the first
// match wins: maintenance, a checked-in guest, an arrival today, any future booking.
// Records without a room reference, nil records and reservations with an empty window
// are skipped. It never fails.
func ResolveRoomState(
	r *room.Room,
	guests []*guest.Guest,
	reservations []*reservation.Reservation,
	now time.Time,
	cal Calendar,
) Result {
	if r == nil {
		return Result{State: StateAvailable, Details: SimpleDetails{Label: LabelReadyForBooking}}
	}

	if r.IsUnderMaintenance() {
		return Result{State: StateMaintenance, Details: SimpleDetails{Label: LabelOutOfService}}
	}

	future := FutureBookings(r.ID(), reservations, now)

	if g := currentGuest(r.ID(), guests); g != nil {
		return Result{
			State: StateOccupied,
			Details: ActivityDetails{
				CurrentActivity:      activityGuestPrefix + g.FullName(),
				CurrentGuestCheckout: g.CheckOutAt(),
				FutureBookings:       future,
			},
		}
	}

	if a := arrivalToday(r.ID(), reservations, now, cal); a != nil {
		return Result{
			State: StateArrival,
			Details: ActivityDetails{
				CurrentActivity: activityArrivalPrefix + a.FullName(),
				FutureBookings:  future,
			},
		}
	}

	if len(future) > 0 {
		return Result{
			State: StateReserved,
			Details: ActivityDetails{
				CurrentActivity: ActivityFreeToday,
				FutureBookings:  future,
			},
		}
	}

	return Result{State: StateAvailable, Details: SimpleDetails{Label: LabelReadyForBooking}}
}

// ResolveAll classifies every room of a snapshot, in input order.
func ResolveAll(
	rooms []*room.Room,
	guests []*guest.Guest,
	reservations []*reservation.Reservation,
	now time.Time,
	cal Calendar,
) []RoomStatus {
	out := make([]RoomStatus, 0, len(rooms))
	for _, r := range rooms {
		if r == nil {
			continue
		}
		out = append(out, RoomStatus{
			Room:   r,
			Result: ResolveRoomState(r, guests, reservations, now, cal),
		})
	}
	return out
}

// FutureBookings lists the room's active reservations starting strictly after now,
// ascending by start. Ties keep input order.
func FutureBookings(roomID uuid.UUID, reservations []*reservation.Reservation, now time.Time) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0)
	for _, res := range reservations {
		if res == nil || !res.IsForRoom(roomID) || !res.IsActive() || !res.HasValidStay() {
			continue
		}
		if res.StartAt().After(now) {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out
}

func currentGuest(roomID uuid.UUID, guests []*guest.Guest) *guest.Guest {
	for _, g := range guests {
		if g != nil && g.Occupies(roomID) {
			return g
		}
	}
	return nil
}

func arrivalToday(roomID uuid.UUID, reservations []*reservation.Reservation, now time.Time, cal Calendar) *reservation.Reservation {
	for _, res := range reservations {
		if res == nil || !res.IsForRoom(roomID) || !res.AwaitsArrival() || !res.HasValidStay() {
			continue
		}
		if cal.SameDay(res.StartAt(), now) {
			return res
		}
	}
	return nil
}

func sortByStart(rs []*reservation.Reservation) {
	slices.SortStableFunc(rs, func(a, b *reservation.Reservation) int {
		return cmp.Compare(a.StartAt().UnixNano(), b.StartAt().UnixNano())
	})
}

// DanglingReference is a guest or reservation pointing at a room that is not part of
// the loaded room set.
type DanglingReference struct {
	Kind   string
	ID     uuid.UUID
	RoomID uuid.UUID
}

// FindDanglingReferences reports records referencing unknown rooms. They are already
// excluded from every derived view; this exists for diagnostics only.
func FindDanglingReferences(
	rooms []*room.Room,
	guests []*guest.Guest,
	reservations []*reservation.Reservation,
) []DanglingReference {
	known := make(map[uuid.UUID]struct{}, len(rooms))
	for _, r := range rooms {
		if r != nil {
			known[r.ID()] = struct{}{}
		}
	}

	var out []DanglingReference
	for _, g := range guests {
		if g == nil || g.RoomID() == nil {
			continue
		}
		if _, ok := known[*g.RoomID()]; !ok {
			out = append(out, DanglingReference{Kind: "guest", ID: g.ID(), RoomID: *g.RoomID()})
		}
	}
	for _, res := range reservations {
		if res == nil || res.RoomID() == nil {
			continue
		}
		if _, ok := known[*res.RoomID()]; !ok {
			out = append(out, DanglingReference{Kind: "reservation", ID: res.ID(), RoomID: *res.RoomID()})
		}
	}
	return out
}
