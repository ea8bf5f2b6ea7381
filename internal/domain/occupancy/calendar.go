package occupancy

import (
	"math"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host zoneinfo
)

const (
	// DefaultZone is used when no hotel zone is configured.
	DefaultZone = "Asia/Karachi"
	DateLayout  = "2006-01-02"
)

const day = 24 * time.Hour

// Calendar pins every calendar-day decision of the engine to one zone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func LoadCalendar(zone string) (Calendar, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Calendar{}, err
	}
	return Calendar{loc: loc}, nil
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.Location()).Date()
	by, bm, bd := b.In(c.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func (c Calendar) DateString(t time.Time) string {
	return t.In(c.Location()).Format(DateLayout)
}

// StartOfDay is local midnight of the day t falls on.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

// ParseDate returns local midnight of a YYYY-MM-DD date.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, c.Location())
}

// WholeDaysBetween is the number of complete 24h periods from a to b, floored.
// 23h yields 0, 24h yields 1, and b before a yields a negative count.
func WholeDaysBetween(a, b time.Time) int {
	return int(math.Floor(float64(b.Sub(a)) / float64(day)))
}

// NightsBetween rounds the stay length to whole nights and charges at least one.
func NightsBetween(checkin, checkout time.Time) int {
	nights := int(math.Round(float64(checkout.Sub(checkin)) / float64(day)))
	return max(1, nights)
}
