// Package yamlstore serves the occupancy read ports from a snapshot file, for offline
// inspection with roomctl.
package yamlstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"hotel-backoffice/internal/domain/guest"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// roomNamespace derives stable room ids from room numbers, so guests and reservations
// in the file refer to rooms by number.
var roomNamespace = uuid.MustParse("6f1f3c1e-4d55-4a4e-9b57-2b1f0c6f8a10")

type File struct {
	TimeZone     string             `yaml:"timezone"`
	Now          *time.Time         `yaml:"now"`
	Rooms        []RoomEntry        `yaml:"rooms"`
	Guests       []GuestEntry       `yaml:"guests"`
	Reservations []ReservationEntry `yaml:"reservations"`
}

type RoomEntry struct {
	Number   string `yaml:"number"`
	Category string `yaml:"category"`
	BedType  string `yaml:"bed_type"`
	View     string `yaml:"view"`
	Rate     int64  `yaml:"rate"`
	Status   string `yaml:"status"`
}

type GuestEntry struct {
	Room       string     `yaml:"room"`
	FullName   string     `yaml:"full_name"`
	Status     string     `yaml:"status"`
	CheckOutAt *time.Time `yaml:"check_out_at"`
}

type ReservationEntry struct {
	ID       string    `yaml:"id"`
	Room     string    `yaml:"room"`
	FullName string    `yaml:"full_name"`
	StartAt  time.Time `yaml:"start_at"`
	EndAt    time.Time `yaml:"end_at"`
	Status   string    `yaml:"status"`
}

// Store holds one decoded snapshot file. It is read-only.
type Store struct {
	timeZone     string
	now          *time.Time
	rooms        []*room.Room
	guests       []*guest.Guest
	reservations []*reservation.Reservation
}

func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a snapshot. Structural errors fail; a record the domain rejects is
// logged and skipped, the same way the database stores treat bad rows.
func Parse(r io.Reader) (*Store, error) {
	var file File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	s := &Store{timeZone: file.TimeZone, now: file.Now}
	for i, e := range file.Rooms {
		rm, err := room.NewRoom(RoomID(e.Number), e.Number, e.Category, e.BedType, e.View, e.Rate, withDefault(e.Status, "available"))
		if err != nil {
			skip("room", i, err)
			continue
		}
		s.rooms = append(s.rooms, rm)
	}
	slices.SortFunc(s.rooms, func(a, b *room.Room) int { return strings.Compare(a.Number(), b.Number()) })

	for i, e := range file.Guests {
		g, err := guest.NewGuest(uuid.New(), roomRef(e.Room), withDefault(e.Status, "checked-in"), e.FullName, e.CheckOutAt)
		if err != nil {
			skip("guest", i, err)
			continue
		}
		s.guests = append(s.guests, g)
	}

	for i, e := range file.Reservations {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, fmt.Errorf("reservation %d: invalid id %q: %w", i, e.ID, err)
		}
		status, err := reservation.ParseStatus(withDefault(e.Status, "confirmed"))
		if err != nil {
			skip("reservation", i, err)
			continue
		}
		s.reservations = append(s.reservations,
			reservation.ReconstructReservation(id, roomRef(e.Room), e.FullName, e.StartAt, e.EndAt, status))
	}
	return s, nil
}

// RoomID is the id a room number maps to inside a snapshot file.
func RoomID(number string) uuid.UUID {
	return uuid.NewSHA1(roomNamespace, []byte(number))
}

// TimeZone is the zone named in the file, empty when it names none.
func (s *Store) TimeZone() string { return s.timeZone }

// Now is the instant the file pins, if any.
func (s *Store) Now() (time.Time, bool) {
	if s.now == nil {
		return time.Time{}, false
	}
	return *s.now, true
}

func (s *Store) LoadSnapshot(_ context.Context, since time.Time) (*queries.Snapshot, error) {
	snap := &queries.Snapshot{
		Rooms:  slices.Clone(s.rooms),
		Guests: make([]*guest.Guest, 0, len(s.guests)),
	}
	for _, g := range s.guests {
		if g.IsCheckedIn() {
			snap.Guests = append(snap.Guests, g)
		}
	}
	for _, r := range s.reservations {
		if r.IsActive() && r.EndAt().After(since) {
			snap.Reservations = append(snap.Reservations, r)
		}
	}
	return snap, nil
}

func (s *Store) FindAll(_ context.Context) ([]*room.Room, error) {
	return slices.Clone(s.rooms), nil
}

// FindByRoomID backs queries.RoomStore.
func (s *Store) FindByRoomID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	for _, r := range s.rooms {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

// FindByNumber resolves a room number typed on the command line.
func (s *Store) FindByNumber(number string) (*room.Room, error) {
	return s.FindByRoomID(context.Background(), RoomID(number))
}

// FindByReservationID backs queries.ReservationStore.
func (s *Store) FindByReservationID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	for _, r := range s.reservations {
		if r.ID() == id && r.IsActive() {
			return r, nil
		}
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (s *Store) FindAvailableRooms(_ context.Context, from, to time.Time, excludeReservationID *uuid.UUID) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(s.rooms))
	for _, rm := range s.rooms {
		if rm.IsUnderMaintenance() || s.booked(rm.ID(), from, to, excludeReservationID) {
			continue
		}
		out = append(out, rm)
	}
	return out, nil
}

func (s *Store) booked(roomID uuid.UUID, from, to time.Time, exclude *uuid.UUID) bool {
	for _, r := range s.reservations {
		if exclude != nil && r.ID() == *exclude {
			continue
		}
		if r.IsForRoom(roomID) && r.IsActive() && r.StartAt().Before(to) && r.EndAt().After(from) {
			return true
		}
	}
	return false
}

// Rooms and Reservations adapt the store to the single-method read ports.
func (s *Store) Rooms() queries.RoomStore { return roomPort{s} }

func (s *Store) Reservations() queries.ReservationStore { return reservationPort{s} }

type roomPort struct{ *Store }

func (p roomPort) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	return p.FindByRoomID(ctx, id)
}

type reservationPort struct{ *Store }

func (p reservationPort) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return p.FindByReservationID(ctx, id)
}

func roomRef(number string) *uuid.UUID {
	if number == "" {
		return nil
	}
	id := RoomID(number)
	return &id
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func skip(kind string, index int, err error) {
	slog.Warn("skipping invalid record",
		slog.String("kind", kind),
		slog.Int("index", index),
		slog.String("error", err.Error()))
}
