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
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/builder"
	"hotel-backoffice/tests/common/httptest"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
	handler     *api.DashboardHandler
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewDashboardHandler(s.mockQueries)

	s.router.GET("/dashboard", s.handler.GetDashboard)
	s.router.GET("/rooms/:id/timeline", s.handler.GetRoomTimeline)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestGetDashboard() {
	s.Run("success: rooms with their states", func() {
		roomID := uuid.New()
		checkout := builder.Day(2)
		view := &queries.DashboardView{
			GeneratedAt: builder.BaseTime,
			TimeZone:    "Asia/Karachi",
			Stats:       queries.DashboardStats{Total: 2, Occupied: 1, Maintenance: 1},
			Rooms: []queries.RoomStateView{
				{
					Room:                 queries.RoomView{ID: roomID, Number: "102", Rate: 5000, Status: "available"},
					State:                "Occupied",
					CurrentActivity:      "Guest: Sara Malik",
					CurrentGuestCheckout: &checkout,
					FutureBookings:       []queries.BookingView{},
				},
				{
					Room:           queries.RoomView{ID: uuid.New(), Number: "101", Status: "maintenance"},
					State:          "Maintenance",
					Label:          occupancy.LabelOutOfService,
					FutureBookings: []queries.BookingView{},
				},
			},
		}
		s.mockQueries.EXPECT().GetDashboard(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)

		var body resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Asia/Karachi", body.TimeZone)
		s.Equal(2, body.Stats.Total)
		s.Require().Len(body.Rooms, 2)
		s.Equal("102", body.Rooms[0].Room.RoomNumber)
		s.Equal(roomID, body.Rooms[0].Room.ID)
		s.Equal("Guest: Sara Malik", body.Rooms[0].CurrentActivity)
		s.Require().NotNil(body.Rooms[0].CurrentGuestCheckout)
		s.True(body.Rooms[0].CurrentGuestCheckout.Equal(checkout))
		s.NotNil(body.Rooms[0].FutureBookings)
		s.Equal(occupancy.LabelOutOfService, body.Rooms[1].Label)
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().GetDashboard(gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection refused"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *DashboardHandlerTestSuite) TestGetRoomTimeline() {
	roomID := uuid.New()

	s.Run("success: segments in order", func() {
		from, to := builder.Day(2), builder.Day(3)
		booking := queries.BookingView{ID: uuid.New(), RoomID: &roomID, FullName: "Bilal Ahmed", StartAt: builder.Day(3), EndAt: builder.Day(5)}
		view := &queries.RoomTimelineView{
			RoomState: queries.RoomStateView{Room: queries.RoomView{ID: roomID, Number: "102"}, State: "Occupied"},
			AnchorEnd: builder.Day(2),
			Segments: []queries.SegmentView{
				{Kind: "free", From: &from, To: &to, Days: 1},
				{Kind: "booking", Booking: &booking},
			},
		}
		s.mockQueries.EXPECT().GetRoomTimeline(gomock.Any(), roomID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/timeline", nil)

		var body resdto.TimelineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Occupied", body.Room.State)
		s.True(body.AnchorEnd.Equal(builder.Day(2)))
		s.Require().Len(body.Segments, 2)
		s.Equal("free", body.Segments[0].Kind)
		s.Equal(1, body.Segments[0].Days)
		s.Nil(body.Segments[0].Booking)
		s.Require().NotNil(body.Segments[1].Booking)
		s.Equal("Bilal Ahmed", body.Segments[1].Booking.GuestName)
	})

	s.Run("error: invalid room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/102/timeline", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id")
	})

	s.Run("error: unknown room", func() {
		s.mockQueries.EXPECT().GetRoomTimeline(gomock.Any(), roomID).
			Return(nil, errs.Wrapf(errs.ErrRoomNotFound, "room %s", roomID)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+roomID.String()+"/timeline", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
