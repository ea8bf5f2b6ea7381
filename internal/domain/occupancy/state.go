package occupancy

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
)

type State string

const (
	StateMaintenance State = "Maintenance"
	StateOccupied    State = "Occupied"
	StateArrival     State = "Arrival"
	StateReserved    State = "Reserved"
	StateAvailable   State = "Available"
)

// States lists every state in precedence order.
var States = []State{StateMaintenance, StateOccupied, StateArrival, StateReserved, StateAvailable}

func (s State) String() string {
	return string(s)
}

const (
	LabelOutOfService     = "Out of service"
	LabelReadyForBooking  = "Ready for booking"
	ActivityFreeToday     = "Free today"
	activityGuestPrefix   = "Guest: "
	activityArrivalPrefix = "Arrival: "
)

// Details is either SimpleDetails or ActivityDetails.
type Details interface {
	isDetails()
}

type SimpleDetails struct {
	Label string
}

type ActivityDetails struct {
	CurrentActivity      string
	CurrentGuestCheckout *time.Time
	FutureBookings       []*reservation.Reservation
}

func (SimpleDetails) isDetails()   {}
func (ActivityDetails) isDetails() {}

type Result struct {
	State   State
	Details Details
}

// FutureBookings returns the attached bookings for activity states, nil otherwise.
func (r Result) FutureBookings() []*reservation.Reservation {
	if d, ok := r.Details.(ActivityDetails); ok {
		return d.FutureBookings
	}
	return nil
}

type RoomStatus struct {
	Room   *room.Room
	Result Result
}

type Stats struct {
	Total       int
	Maintenance int
	Occupied    int
	Arrival     int
	Reserved    int
	Available   int
}

func Summarize(statuses []RoomStatus) Stats {
	stats := Stats{Total: len(statuses)}
	for _, s := range statuses {
		switch s.Result.State {
		case StateMaintenance:
			stats.Maintenance++
		case StateOccupied:
			stats.Occupied++
		case StateArrival:
			stats.Arrival++
		case StateReserved:
			stats.Reserved++
		case StateAvailable:
			stats.Available++
		}
	}
	return stats
}
