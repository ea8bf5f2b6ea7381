package queries

import (
	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
)

func toRoomView(r *room.Room) RoomView {
	return RoomView{
		ID:       r.ID(),
		Number:   r.Number(),
		Category: r.Category(),
		BedType:  r.BedType(),
		View:     r.View(),
		Rate:     r.Rate().Amount(),
		Status:   r.Status().String(),
	}
}

func toRoomViewPtr(r *room.Room) *RoomView {
	if r == nil {
		return nil
	}
	v := toRoomView(r)
	return &v
}

func toRoomViews(rs []*room.Room) []RoomView {
	out := make([]RoomView, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRoomView(r))
	}
	return out
}

func toBookingView(res *reservation.Reservation, cal occupancy.Calendar) BookingView {
	return BookingView{
		ID:       res.ID(),
		RoomID:   res.RoomID(),
		FullName: res.FullName(),
		StartAt:  res.StartAt(),
		EndAt:    res.EndAt(),
		Status:   res.Status().String(),
		Checkin:  cal.DateString(res.StartAt()),
		Checkout: cal.DateString(res.EndAt()),
	}
}

func toRoomStateView(rs occupancy.RoomStatus, cal occupancy.Calendar) RoomStateView {
	v := RoomStateView{
		Room:           toRoomView(rs.Room),
		State:          rs.Result.State.String(),
		FutureBookings: []BookingView{},
	}
	switch d := rs.Result.Details.(type) {
	case occupancy.SimpleDetails:
		v.Label = d.Label
	case occupancy.ActivityDetails:
		v.CurrentActivity = d.CurrentActivity
		v.CurrentGuestCheckout = d.CurrentGuestCheckout
		for _, b := range d.FutureBookings {
			v.FutureBookings = append(v.FutureBookings, toBookingView(b, cal))
		}
	}
	return v
}

func toStatsView(s occupancy.Stats) DashboardStats {
	return DashboardStats{
		Total:       s.Total,
		Maintenance: s.Maintenance,
		Occupied:    s.Occupied,
		Arrival:     s.Arrival,
		Reserved:    s.Reserved,
		Available:   s.Available,
	}
}

func toSegmentViews(segments []occupancy.Segment, cal occupancy.Calendar) []SegmentView {
	out := make([]SegmentView, 0, len(segments))
	for _, seg := range segments {
		switch s := seg.(type) {
		case occupancy.BookingSegment:
			b := toBookingView(s.Reservation, cal)
			out = append(out, SegmentView{Kind: string(s.Kind()), Booking: &b})
		case occupancy.FreeSegment:
			from, to := s.From, s.To
			out = append(out, SegmentView{Kind: string(s.Kind()), From: &from, To: &to, Days: s.Days})
		}
	}
	return out
}
