package reservation

import "fmt"

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
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
	case StatusReserved, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// IsActive is the timeline predicate: everything except cancelled and checked-out.
func (s Status) IsActive() bool {
	return s != StatusCancelled && s != StatusCheckedOut
}

// AwaitsArrival is true for bookings whose guest has not checked in yet.
func (s Status) AwaitsArrival() bool {
	return s == StatusReserved || s == StatusConfirmed
}
