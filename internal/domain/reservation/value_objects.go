package reservation

import (
	"errors"
	"time"
)

var ErrInvalidStay = errors.New("stay end must be after start")

// Stay is a half-open [start, end) occupancy window.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end time.Time) (Stay, error) {
	if !end.After(start) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{start: start, end: end}, nil
}

func (s Stay) Start() time.Time {
	return s.start
}

func (s Stay) End() time.Time {
	return s.end
}

func (s Stay) Duration() time.Duration {
	return s.end.Sub(s.start)
}

func (s Stay) IsValid() bool {
	return s.end.After(s.start)
}

// Overlaps treats back-to-back stays (one ends when the next starts) as disjoint.
func (s Stay) Overlaps(other Stay) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}
