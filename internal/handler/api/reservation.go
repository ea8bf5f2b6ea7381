package api

import (
	"net/http"

	reqdto "hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Preview swap
// @Description Validate a room/date change and project its cost without saving it
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SwapRequest true "Swap form"
// @Success 200 {object} resdto.SwapPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/swap/preview [post]
func (h *ReservationHandler) PreviewSwap(c *gin.Context) {
	id, req, ok := bindSwap(c)
	if !ok {
		return
	}
	view, err := h.q.PreviewSwap(c.Request.Context(), id, req.ToForm())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromSwapPreviewView(view)
	renderOK(c, resp, err)
}

// @Summary Apply swap
// @Description Move a reservation to another room and/or dates
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SwapRequest true "Swap form"
// @Success 200 {object} resdto.SwapResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/reservations/{id}/swap [post]
func (h *ReservationHandler) Swap(c *gin.Context) {
	id, req, ok := bindSwap(c)
	if !ok {
		return
	}
	result, err := h.cmds.Swap(c.Request.Context(), id, req.ToForm())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromSwapResult(result)
	renderOK(c, resp, err)
}

// @Summary Change room
// @Description Move a reservation to another room keeping its dates
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeRoomRequest true "Target room"
// @Success 200 {object} resdto.ChangeRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/reservations/{id}/change-room [post]
func (h *ReservationHandler) ChangeRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ChangeRoom(c.Request.Context(), id, req.RoomID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromChangeRoomResult(result)
	renderOK(c, resp, err)
}

// @Summary Change-room candidates
// @Description Rooms outside maintenance, excluding the current one, by room number
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CandidatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/change-room/candidates [get]
func (h *ReservationHandler) ChangeRoomCandidates(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rooms, err := h.q.ChangeRoomCandidates(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromCandidates(rooms)
	renderOK(c, resp, err)
}

// @Summary Swap candidates
// @Description Rooms free for the requested window; omitted dates keep the reservation's own
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Param checkin query string false "YYYY-MM-DD"
// @Param checkout query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.CandidatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/{id}/swap/candidates [get]
func (h *ReservationHandler) SwapCandidates(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var query reqdto.SwapCandidatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	rooms, err := h.q.SwapCandidates(c.Request.Context(), id, query.Checkin, query.Checkout)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromCandidates(rooms)
	renderOK(c, resp, err)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindSwap(c *gin.Context) (uuid.UUID, reqdto.SwapRequest, bool) {
	var req reqdto.SwapRequest
	id, ok := parseID(c)
	if !ok {
		return id, req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return id, req, false
	}
	return id, req, true
}
