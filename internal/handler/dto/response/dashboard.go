package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber string    `json:"room_number" copier:"Number"`
	Category   string    `json:"category"`
	BedType    string    `json:"bed_type"`
	View       string    `json:"view"`
	Rate       int64     `json:"rate"`
	Status     string    `json:"status"`
}

type BookingResponse struct {
	ID        uuid.UUID  `json:"id"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	GuestName string     `json:"guest_name" copier:"FullName"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     time.Time  `json:"end_at"`
	Status    string     `json:"status"`
	Checkin   string     `json:"checkin"`
	Checkout  string     `json:"checkout"`
}

type RoomStateResponse struct {
	Room                 RoomResponse      `json:"room"`
	State                string            `json:"state"`
	Label                string            `json:"label,omitempty"`
	CurrentActivity      string            `json:"current_activity,omitempty"`
	CurrentGuestCheckout *time.Time        `json:"current_guest_checkout,omitempty"`
	FutureBookings       []BookingResponse `json:"future_bookings"`
}

type StatsResponse struct {
	Total       int `json:"total"`
	Maintenance int `json:"maintenance"`
	Occupied    int `json:"occupied"`
	Arrival     int `json:"arrival"`
	Reserved    int `json:"reserved"`
	Available   int `json:"available"`
}

type DashboardResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	TimeZone    string              `json:"time_zone"`
	Stats       StatsResponse       `json:"stats"`
	Rooms       []RoomStateResponse `json:"rooms"`
}

type SegmentResponse struct {
	Kind    string           `json:"kind"`
	Booking *BookingResponse `json:"booking,omitempty"`
	From    *time.Time       `json:"from,omitempty"`
	To      *time.Time       `json:"to,omitempty"`
	Days    int              `json:"days,omitempty"`
}

type TimelineResponse struct {
	Room      RoomStateResponse `json:"room"`
	AnchorEnd time.Time         `json:"anchor_end"`
	Segments  []SegmentResponse `json:"segments"`
}

func FromRoomView(v queries.RoomView) (RoomResponse, error) {
	var r RoomResponse
	err := copyFields(&r, &v)
	return r, err
}

func FromRoomViews(vs []queries.RoomView) ([]RoomResponse, error) {
	out := make([]RoomResponse, len(vs))
	for i, v := range vs {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func FromBookingView(v queries.BookingView) (BookingResponse, error) {
	var b BookingResponse
	err := copyFields(&b, &v)
	return b, err
}

func FromRoomStateView(v queries.RoomStateView) (RoomStateResponse, error) {
	bookings := make([]BookingResponse, len(v.FutureBookings))
	for i, fb := range v.FutureBookings {
		b, err := FromBookingView(fb)
		if err != nil {
			return RoomStateResponse{}, err
		}
		bookings[i] = b
	}
	r, err := FromRoomView(v.Room)
	if err != nil {
		return RoomStateResponse{}, err
	}
	return RoomStateResponse{
		Room:                 r,
		State:                v.State,
		Label:                v.Label,
		CurrentActivity:      v.CurrentActivity,
		CurrentGuestCheckout: v.CurrentGuestCheckout,
		FutureBookings:       bookings,
	}, nil
}

func FromDashboardView(v *queries.DashboardView) (*DashboardResponse, error) {
	var stats StatsResponse
	if err := copyFields(&stats, &v.Stats); err != nil {
		return nil, err
	}

	rooms := make([]RoomStateResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		state, err := FromRoomStateView(r)
		if err != nil {
			return nil, err
		}
		rooms[i] = state
	}
	return &DashboardResponse{
		GeneratedAt: v.GeneratedAt,
		TimeZone:    v.TimeZone,
		Stats:       stats,
		Rooms:       rooms,
	}, nil
}

func FromRoomTimelineView(v *queries.RoomTimelineView) (*TimelineResponse, error) {
	segments := make([]SegmentResponse, len(v.Segments))
	for i, s := range v.Segments {
		seg := SegmentResponse{Kind: s.Kind, From: s.From, To: s.To, Days: s.Days}
		if s.Booking != nil {
			b, err := FromBookingView(*s.Booking)
			if err != nil {
				return nil, err
			}
			seg.Booking = &b
		}
		segments[i] = seg
	}
	state, err := FromRoomStateView(v.RoomState)
	if err != nil {
		return nil, err
	}
	return &TimelineResponse{
		Room:      state,
		AnchorEnd: v.AnchorEnd,
		Segments:  segments,
	}, nil
}
