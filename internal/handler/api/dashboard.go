package api

import (
	"net/http"

	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Room dashboard
// @Description Current state of every room with per-state counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 500 {object} httperr.Response
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	view, err := h.q.GetDashboard(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromDashboardView(view)
	renderOK(c, resp, err)
}

// @Summary Room timeline
// @Description Upcoming bookings of a room interleaved with free gaps of at least one day
// @Tags dashboard
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.TimelineResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id}/timeline [get]
func (h *DashboardHandler) GetRoomTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room id", nil)
		return
	}
	view, err := h.q.GetRoomTimeline(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromRoomTimelineView(view)
	renderOK(c, resp, err)
}
