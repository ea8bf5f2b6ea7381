//go:build e2e

package occupancy_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/tests/common/dbtest"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	dashboardURL  = "/api/dashboard"
	timelineURL   = "/api/rooms/%s/timeline"
	previewURL    = "/api/reservations/%s/swap/preview"
	swapURL       = "/api/reservations/%s/swap"
	changeRoomURL = "/api/reservations/%s/change-room"
	candidatesURL = "/api/reservations/%s/swap/candidates"
)

var karachi = time.FixedZone("PKT", 5*60*60)

type OccupancySuite struct {
	e2e.SharedSuite
}

func (s *OccupancySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOccupancySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OccupancySuite))
}

type hotel struct {
	maintenance, occupied, free, reserved uuid.UUID
	nextTenant, blocker                   uuid.UUID
	now                                   time.Time
}

// seeds four rooms: one closed, one with a guest and a later booking, one free and
// one booked from day 3 to day 6 by someone else
func (s *OccupancySuite) seedHotel(t *testing.T) hotel {
	t.Helper()

	now := time.Now().Truncate(time.Minute)
	h := hotel{now: now}
	h.maintenance = dbtest.InsertRoom(t, s.DB, dbtest.RoomRow{Number: "101", Rate: 5000, Status: "maintenance"})
	h.occupied = dbtest.InsertRoom(t, s.DB, dbtest.RoomRow{Number: "102", Rate: 5000})
	h.free = dbtest.InsertRoom(t, s.DB, dbtest.RoomRow{Number: "103", Rate: 8000})
	h.reserved = dbtest.InsertRoom(t, s.DB, dbtest.RoomRow{Number: "104", Rate: 6000})

	dbtest.InsertCheckedInGuest(t, s.DB, h.occupied, "Sara Malik", now.Add(48*time.Hour))
	h.nextTenant = dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{
		RoomID: &h.occupied, FullName: "Bilal Ahmed",
		StartAt: now.Add(72 * time.Hour), EndAt: now.Add(120 * time.Hour),
	})
	h.blocker = dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{
		RoomID: &h.reserved, FullName: "Hina Raza",
		StartAt: now.Add(72 * time.Hour), EndAt: now.Add(144 * time.Hour),
	})
	// cancelled bookings never block or show up
	dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{
		RoomID: &h.free, FullName: "Cancelled Guest", Status: "cancelled",
		StartAt: now.Add(72 * time.Hour), EndAt: now.Add(96 * time.Hour),
	})
	return h
}

func (s *OccupancySuite) TestDashboard() {
	s.Run("Normal case: every room resolves to its state", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil)
		var body response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.Equal(t, response.StatsResponse{Total: 4, Maintenance: 1, Occupied: 1, Reserved: 1, Available: 1}, body.Stats)

		states := map[uuid.UUID]response.RoomStateResponse{}
		for _, r := range body.Rooms {
			states[r.Room.ID] = r
		}
		require.Equal(t, "Maintenance", states[h.maintenance].State)
		require.Equal(t, "Occupied", states[h.occupied].State)
		require.Equal(t, "Guest: Sara Malik", states[h.occupied].CurrentActivity)
		require.Len(t, states[h.occupied].FutureBookings, 1)
		require.Equal(t, "Available", states[h.free].State)
		require.Equal(t, "Reserved", states[h.reserved].State)
		require.Equal(t, "Free today", states[h.reserved].CurrentActivity)
	})

	s.Run("Normal case: timeline starts after the current guest leaves", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(timelineURL, h.occupied), nil)
		var body response.TimelineResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.True(t, body.AnchorEnd.Equal(h.now.Add(48*time.Hour)))
		kinds := make([]string, 0, len(body.Segments))
		for _, seg := range body.Segments {
			kinds = append(kinds, seg.Kind)
		}
		if diff := cmp.Diff([]string{"free", "booking"}, kinds); diff != "" {
			t.Errorf("segment kinds mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, body.Segments[0].Days)
		require.Equal(t, h.nextTenant, body.Segments[1].Booking.ID)
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(timelineURL, uuid.New()), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})
}

func (s *OccupancySuite) TestSwap() {
	s.Run("Normal case: preview does not write", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(previewURL, h.nextTenant),
			map[string]any{"room_id": h.free.String()})
		var body response.SwapPreviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.Equal(t, int64(10000), body.Cost.CurrentEstimate)
		require.Equal(t, int64(16000), body.Cost.NewEstimate)
		require.Equal(t, int64(6000), body.Cost.Difference)

		roomID, _, _ := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.occupied, *roomID)
	})

	s.Run("Normal case: date change keeps the time of day", func() {
		t := s.T()
		h := s.seedHotel(t)
		newCheckout := h.now.Add(144 * time.Hour).In(karachi).Format("2006-01-02")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(swapURL, h.nextTenant),
			map[string]any{"checkout": newCheckout})
		var body response.SwapResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "Reservation updated", body.Message)

		roomID, startAt, endAt := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.occupied, *roomID)
		require.True(t, startAt.Equal(h.now.Add(72*time.Hour)))
		require.True(t, endAt.Equal(h.now.Add(144*time.Hour)), "end_at = %s", endAt)
	})

	s.Run("Normal case: free room is a swap candidate, booked room is not", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(candidatesURL, h.nextTenant), nil)
		var body response.CandidatesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		numbers := make([]string, 0, len(body.Rooms))
		for _, r := range body.Rooms {
			numbers = append(numbers, r.RoomNumber)
		}
		if diff := cmp.Diff([]string{"102", "103"}, numbers); diff != "" {
			t.Errorf("candidate rooms mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping booking on the target room", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(swapURL, h.nextTenant),
			map[string]any{"room_id": h.reserved.String()})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "room 104 is already booked by Hina Raza")

		roomID, _, _ := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.occupied, *roomID)
	})

	s.Run("Error case: maintenance room cannot be selected", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(swapURL, h.nextTenant),
			map[string]any{"room_id": h.maintenance.String()})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "cannot be selected")

		roomID, _, _ := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.occupied, *roomID)
	})

	s.Run("Error case: repository refuses a move into a maintenance room", func() {
		t := s.T()
		h := s.seedHotel(t)
		ctx := context.Background()
		repo := repository.NewReservationRepository()

		_, startAt, endAt := dbtest.ReservationState(t, s.DB, h.nextTenant)
		stay, err := reservation.NewStay(startAt, endAt)
		require.NoError(t, err)

		err = repo.ApplySwap(ctx, s.DB, h.nextTenant, &h.maintenance, stay)
		require.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
		require.ErrorContains(t, err, "room 101 is under maintenance")

		err = repo.ChangeRoom(ctx, s.DB, h.nextTenant, h.maintenance)
		require.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)

		roomID, _, _ := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.occupied, *roomID)
	})

	s.Run("Error case: nothing to change", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(swapURL, h.nextTenant), map[string]any{})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "No changes to apply")
	})
}

func (s *OccupancySuite) TestChangeRoom() {
	s.Run("Normal case: reservation moves to the free room", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(changeRoomURL, h.nextTenant),
			map[string]any{"room_id": h.free.String()})
		var body response.ChangeRoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "Reservation moved to room 103", body.Message)

		roomID, _, _ := dbtest.ReservationState(t, s.DB, h.nextTenant)
		require.Equal(t, h.free, *roomID)
	})

	s.Run("Error case: maintenance room cannot be selected", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(changeRoomURL, h.nextTenant),
			map[string]any{"room_id": h.maintenance.String()})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "cannot be selected")
	})

	s.Run("Error case: the target room is taken", func() {
		t := s.T()
		h := s.seedHotel(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(changeRoomURL, h.nextTenant),
			map[string]any{"room_id": h.reserved.String()})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "room 104 is already booked by Hina Raza for these dates")
	})
}
