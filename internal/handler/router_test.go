//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/httptest"
	commandsmock "hotel-backoffice/tests/mock/commands"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	dashboard    *queriesmock.MockDashboardQueries
	reservations *queriesmock.MockReservationQueries
	commands     *commandsmock.MockReservationCommands
}

func newRouter(t *testing.T, mutate func(*config.Config)) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := routerMocks{
		dashboard:    queriesmock.NewMockDashboardQueries(ctrl),
		reservations: queriesmock.NewMockReservationQueries(ctrl),
		commands:     commandsmock.NewMockReservationCommands(ctrl),
	}
	cfg := config.NewTestConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		api.NewDashboardHandler(m.dashboard),
		api.NewReservationHandler(m.commands, m.reservations))
	return engine, m
}

func emptyDashboard() *queries.DashboardView {
	return &queries.DashboardView{GeneratedAt: time.Now(), Rooms: []queries.RoomStateView{}}
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		r, _ := newRouter(t, nil)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dashboard is cached until a mutation succeeds", func(t *testing.T) {
		r, m := newRouter(t, func(cfg *config.Config) { cfg.HTTP.DashboardCacheTTL = time.Minute })
		id := uuid.New()

		m.dashboard.EXPECT().GetDashboard(gomock.Any()).Return(emptyDashboard(), nil).Times(2)
		m.commands.EXPECT().ChangeRoom(gomock.Any(), id, gomock.Any()).
			Return(&commands.ChangeRoomResult{ReservationID: id, Message: "Reservation moved to room 103"}, nil)

		httptest.PerformRequest(t, r, http.MethodGet, "/api/dashboard", nil)
		cached := httptest.PerformRequest(t, r, http.MethodGet, "/api/dashboard", nil)
		assert.Equal(t, "HIT", cached.Header().Get("X-Cache"))

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/reservations/"+id.String()+"/change-room",
			map[string]any{"room_id": uuid.New().String()})
		assert.Equal(t, http.StatusOK, rec.Code)

		fresh := httptest.PerformRequest(t, r, http.MethodGet, "/api/dashboard", nil)
		assert.Empty(t, fresh.Header().Get("X-Cache"))
	})

	t.Run("mutations are rate limited per client", func(t *testing.T) {
		r, _ := newRouter(t, func(cfg *config.Config) {
			cfg.HTTP.MutationRatePerSec = 0.001
			cfg.HTTP.MutationBurst = 1
		})

		// malformed ids still spend a token
		first := httptest.PerformRequest(t, r, http.MethodPost, "/api/reservations/x/swap", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, first.Code)

		second := httptest.PerformRequest(t, r, http.MethodPost, "/api/reservations/x/swap", map[string]any{})
		httptest.AssertErrorResponse(t, second, http.StatusTooManyRequests, "Too many requests")
	})
}
