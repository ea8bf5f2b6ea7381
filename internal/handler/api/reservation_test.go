//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/common/testutil"
	commandsmock "hotel-backoffice/tests/mock/commands"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations/:id/swap/preview", s.handler.PreviewSwap)
	s.router.POST("/reservations/:id/swap", s.handler.Swap)
	s.router.POST("/reservations/:id/change-room", s.handler.ChangeRoom)
	s.router.GET("/reservations/:id/change-room/candidates", s.handler.ChangeRoomCandidates)
	s.router.GET("/reservations/:id/swap/candidates", s.handler.SwapCandidates)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func previewView(id, roomID uuid.UUID) *queries.SwapPreviewView {
	checkout := "2025-03-16"
	return &queries.SwapPreviewView{
		Reservation: queries.BookingView{
			ID:       id,
			RoomID:   &roomID,
			FullName: "Bilal Ahmed",
			StartAt:  builder.Day(3),
			EndAt:    builder.Day(5),
			Status:   "confirmed",
			Checkin:  "2025-03-13",
			Checkout: "2025-03-15",
		},
		CurrentRoom:  &queries.RoomView{ID: roomID, Number: "201", Rate: 5000, Status: "available"},
		SelectedRoom: &queries.RoomView{ID: roomID, Number: "201", Rate: 5000, Status: "available"},
		Delta:        queries.SwapDeltaView{NewCheckout: &checkout},
		Cost: queries.CostView{
			CurrentNights: 2, NewNights: 3, CurrentEstimate: 10000, NewEstimate: 15000, Difference: 5000,
		},
		NewStartAt: builder.Day(3),
		NewEndAt:   builder.Day(6),
	}
}

// ================================================================================
// TestPreviewSwap
// ================================================================================

func (s *ReservationHandlerTestSuite) TestPreviewSwap() {
	id := uuid.New()
	roomID := uuid.New()
	url := "/reservations/" + id.String() + "/swap/preview"
	reqBody := map[string]any{"checkout": "2025-03-16"}

	s.Run("success: returns the projected cost", func() {
		s.mockQueries.EXPECT().PreviewSwap(gomock.Any(), id, queries.SwapForm{Checkout: "2025-03-16"}).
			Return(previewView(id, roomID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SwapPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5000), body.Cost.Difference)
		s.Equal(3, body.Cost.NewNights)
		s.Require().NotNil(body.Delta.NewCheckout)
		s.Equal("2025-03-16", *body.Delta.NewCheckout)
		s.Nil(body.Delta.NewRoomID)
		s.Equal("Bilal Ahmed", body.Reservation.GuestName)
		s.Require().NotNil(body.SelectedRoom)
		s.Equal("201", body.SelectedRoom.RoomNumber)
		s.True(body.NewEndAt.Equal(builder.Day(6)))
	})

	s.Run("success: omitted fields become empty form values", func() {
		newRoom := uuid.New()
		s.mockQueries.EXPECT().PreviewSwap(gomock.Any(), id, queries.SwapForm{RoomID: newRoom}).
			Return(previewView(id, roomID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("checkout", nil), testutil.Field("room_id", newRoom.String())))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed input", func() {
		cases := []struct {
			name string
			url  string
			body any
		}{
			{name: "invalid reservation id", url: "/reservations/not-a-uuid/swap/preview", body: reqBody},
			{name: "room id is not a uuid", url: url, body: testutil.DtoMap(s.T(), reqBody, testutil.Field("room_id", "room-7"))},
			{name: "checkout is not a string", url: url, body: testutil.DtoMap(s.T(), reqBody, testutil.Field("checkout", 20250316))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.url, tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "no changes", queryErr: occupancy.ErrNoChanges, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "No changes to apply"},
			{name: "inverted dates", queryErr: occupancy.ErrInvalidDateRange, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Check-out must be after check-in"},
			{name: "malformed date", queryErr: occupancy.ErrInvalidDate, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "YYYY-MM-DD"},
			{name: "reservation not found", queryErr: errs.ErrReservationNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Reservation not found"},
			{name: "room not found", queryErr: errs.Wrap(errs.ErrRoomNotFound, "room lookup"), expectedStatus: http.StatusNotFound, expectedMsg: "Room not found"},
			{name: "database error", queryErr: errs.Mark(errors.New("timeout"), errs.ErrDatabaseOperationFailed), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().PreviewSwap(gomock.Any(), id, gomock.Any()).Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSwap
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSwap() {
	id := uuid.New()
	roomID := uuid.New()
	url := "/reservations/" + id.String() + "/swap"
	reqBody := map[string]any{"checkout": "2025-03-16"}

	s.Run("success: returns message and applied plan", func() {
		s.mockCommands.EXPECT().Swap(gomock.Any(), id, queries.SwapForm{Checkout: "2025-03-16"}).
			Return(&commands.SwapResult{Preview: previewView(id, roomID), Message: "Reservation updated"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SwapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Reservation updated", body.Message)
		s.Require().NotNil(body.Preview)
		s.Equal(int64(15000), body.Preview.Cost.NewEstimate)
	})

	s.Run("error: conflict surfaces the repository message", func() {
		conflict := errs.Mark(
			infra.WrapRepoErr("room 305 is already booked by Hina Raza for these dates", nil, infra.KindConflict),
			errs.ErrReservationConflict,
		)
		s.mockCommands.EXPECT().Swap(gomock.Any(), id, gomock.Any()).Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room 305 is already booked by Hina Raza")
	})

	s.Run("error: validation failure", func() {
		s.mockCommands.EXPECT().Swap(gomock.Any(), id, gomock.Any()).Return(nil, occupancy.ErrNoChanges).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No changes to apply")
	})
}

// ================================================================================
// TestChangeRoom
// ================================================================================

func (s *ReservationHandlerTestSuite) TestChangeRoom() {
	id := uuid.New()
	roomID := uuid.New()
	url := "/reservations/" + id.String() + "/change-room"
	reqBody := map[string]any{"room_id": roomID.String()}

	s.Run("success: returns the confirmation message", func() {
		s.mockCommands.EXPECT().ChangeRoom(gomock.Any(), id, roomID).
			Return(&commands.ChangeRoomResult{ReservationID: id, RoomID: roomID, Message: "Reservation moved to room 412"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ChangeRoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Reservation moved to room 412", body.Message)
		s.Equal(id, body.ReservationID)
		s.Equal(roomID, body.RoomID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("room_id", nil),
			testutil.Field("room_id", "412"),
			testutil.Field("room_id", uuid.Nil.String()),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, mutate))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: room outside the candidate list", func() {
		s.mockCommands.EXPECT().ChangeRoom(gomock.Any(), id, roomID).Return(nil, errs.ErrRoomNotSelectable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be selected")
	})

	s.Run("error: 500 when the result cannot be mapped", func() {
		s.mockCommands.EXPECT().ChangeRoom(gomock.Any(), id, roomID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCandidates
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCandidates() {
	id := uuid.New()
	rooms := []queries.RoomView{
		{ID: uuid.New(), Number: "103", Rate: 7000, Status: "available"},
		{ID: uuid.New(), Number: "104", Rate: 7000, Status: "occupied"},
	}

	s.Run("change-room candidates", func() {
		s.mockQueries.EXPECT().ChangeRoomCandidates(gomock.Any(), id).Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/change-room/candidates", nil)

		var body resdto.CandidatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rooms, 2)
		s.Equal("103", body.Rooms[0].RoomNumber)
		s.Equal(int64(7000), body.Rooms[0].Rate)
	})

	s.Run("swap candidates pass the query dates through", func() {
		s.mockQueries.EXPECT().SwapCandidates(gomock.Any(), id, "2025-03-20", "").Return(rooms[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/swap/candidates?checkin=2025-03-20", nil)

		var body resdto.CandidatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Rooms, 1)
	})

	s.Run("swap candidates with a malformed date", func() {
		s.mockQueries.EXPECT().SwapCandidates(gomock.Any(), id, "20-03-2025", "").Return(nil, occupancy.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/swap/candidates?checkin=20-03-2025", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "YYYY-MM-DD")
	})

	s.Run("unknown reservation", func() {
		s.mockQueries.EXPECT().ChangeRoomCandidates(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/change-room/candidates", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
