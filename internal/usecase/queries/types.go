package queries

import (
	"time"

	"hotel-backoffice/internal/domain/guest"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

// Snapshot is one consistent read of the three collections the occupancy engine needs.
type Snapshot struct {
	Rooms        []*room.Room
	Guests       []*guest.Guest
	Reservations []*reservation.Reservation
}

// Read models (DTO for read side)
type RoomView struct {
	ID       uuid.UUID `json:"id"`
	Number   string    `json:"room_number"`
	Category string    `json:"category"`
	BedType  string    `json:"bed_type"`
	View     string    `json:"view"`
	Rate     int64     `json:"rate"`
	Status   string    `json:"status"`
}

type BookingView struct {
	ID       uuid.UUID  `json:"id"`
	RoomID   *uuid.UUID `json:"room_id,omitempty"`
	FullName string     `json:"full_name"`
	StartAt  time.Time  `json:"start_at"`
	EndAt    time.Time  `json:"end_at"`
	Status   string     `json:"status"`
	Checkin  string     `json:"checkin"`
	Checkout string     `json:"checkout"`
}

// RoomStateView flattens an occupancy result. Label is set for Maintenance and
// Available, CurrentActivity and FutureBookings for the other states.
type RoomStateView struct {
	Room                 RoomView      `json:"room"`
	State                string        `json:"state"`
	Label                string        `json:"label,omitempty"`
	CurrentActivity      string        `json:"current_activity,omitempty"`
	CurrentGuestCheckout *time.Time    `json:"current_guest_checkout,omitempty"`
	FutureBookings       []BookingView `json:"future_bookings"`
}

type DashboardStats struct {
	Total       int `json:"total"`
	Maintenance int `json:"maintenance"`
	Occupied    int `json:"occupied"`
	Arrival     int `json:"arrival"`
	Reserved    int `json:"reserved"`
	Available   int `json:"available"`
}

type DashboardView struct {
	GeneratedAt time.Time       `json:"generated_at"`
	TimeZone    string          `json:"time_zone"`
	Stats       DashboardStats  `json:"stats"`
	Rooms       []RoomStateView `json:"rooms"`
}

type SegmentView struct {
	Kind    string       `json:"kind"`
	Booking *BookingView `json:"booking,omitempty"`
	From    *time.Time   `json:"from,omitempty"`
	To      *time.Time   `json:"to,omitempty"`
	Days    int          `json:"days,omitempty"`
}

type RoomTimelineView struct {
	RoomState RoomStateView `json:"room_state"`
	AnchorEnd time.Time     `json:"anchor_end"`
	Segments  []SegmentView `json:"segments"`
}

// SwapForm is the submitted swap form. Zero or empty fields keep the reservation's value.
type SwapForm struct {
	RoomID   uuid.UUID
	Checkin  string
	Checkout string
}

type SwapDeltaView struct {
	NewRoomID   *uuid.UUID `json:"new_room_id,omitempty"`
	NewCheckin  *string    `json:"new_checkin,omitempty"`
	NewCheckout *string    `json:"new_checkout,omitempty"`
}

type CostView struct {
	CurrentNights   int   `json:"current_nights"`
	NewNights       int   `json:"new_nights"`
	CurrentEstimate int64 `json:"current_estimate"`
	NewEstimate     int64 `json:"new_estimate"`
	Difference      int64 `json:"difference"`
}

type SwapPreviewView struct {
	Reservation  BookingView   `json:"reservation"`
	CurrentRoom  *RoomView     `json:"current_room,omitempty"`
	SelectedRoom *RoomView     `json:"selected_room,omitempty"`
	Delta        SwapDeltaView `json:"delta"`
	Cost         CostView      `json:"cost"`
	NewStartAt   time.Time     `json:"new_start_at"`
	NewEndAt     time.Time     `json:"new_end_at"`
}
