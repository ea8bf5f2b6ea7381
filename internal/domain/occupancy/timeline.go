package occupancy

import (
	"slices"
	"time"

	"hotel-backoffice/internal/domain/reservation"
)

type SegmentKind string

const (
	SegmentBooking SegmentKind = "booking"
	SegmentFree    SegmentKind = "free"
)

// Segment is either a BookingSegment or a FreeSegment.
type Segment interface {
	Kind() SegmentKind
	Start() time.Time
}

type BookingSegment struct {
	Reservation *reservation.Reservation
}

type FreeSegment struct {
	From time.Time
	To   time.Time
	Days int
}

func (BookingSegment) Kind() SegmentKind  { return SegmentBooking }
func (s BookingSegment) Start() time.Time { return s.Reservation.StartAt() }

func (FreeSegment) Kind() SegmentKind  { return SegmentFree }
func (s FreeSegment) Start() time.Time { return s.From }

// BuildTimeline interleaves bookings with the free gaps between them, measured from
// anchorEnd. Gaps shorter than one whole day are not shown. The cursor only moves
// forward, so a booking nested inside an earlier one does not reopen a gap.
// Overlapping bookings are emitted back to back as they are.
func BuildTimeline(futureBookings []*reservation.Reservation, anchorEnd time.Time) []Segment {
	sorted := make([]*reservation.Reservation, 0, len(futureBookings))
	for _, r := range futureBookings {
		if r != nil && r.HasValidStay() {
			sorted = append(sorted, r)
		}
	}
	sortByStart(sorted)

	segments := make([]Segment, 0, len(sorted)*2)
	cursor := anchorEnd
	for _, r := range sorted {
		if gap := WholeDaysBetween(cursor, r.StartAt()); gap > 0 && r.StartAt().After(cursor) {
			segments = append(segments, FreeSegment{From: cursor, To: r.StartAt(), Days: gap})
		}
		segments = append(segments, BookingSegment{Reservation: r})
		if r.EndAt().After(cursor) {
			cursor = r.EndAt()
		}
	}
	return slices.Clip(segments)
}

// TimelineAnchor is the instant free time is measured from: the current guest's planned
// checkout when the room is occupied and that checkout is still ahead, otherwise now.
func TimelineAnchor(result Result, now time.Time) time.Time {
	if result.State != StateOccupied {
		return now
	}
	d, ok := result.Details.(ActivityDetails)
	if !ok || d.CurrentGuestCheckout == nil || !d.CurrentGuestCheckout.After(now) {
		return now
	}
	return *d.CurrentGuestCheckout
}
