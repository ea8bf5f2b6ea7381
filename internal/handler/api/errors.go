package api

import (
	"errors"
	"net/http"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/handler/httperr"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var usecaseErrors = []errorMapping{
	{occupancy.ErrNoChanges, http.StatusUnprocessableEntity, "No changes to apply"},
	{occupancy.ErrInvalidDateRange, http.StatusUnprocessableEntity, "Check-out must be after check-in"},
	{occupancy.ErrInvalidDate, http.StatusUnprocessableEntity, "Dates must be formatted as YYYY-MM-DD"},
	{errs.ErrRoomNotSelectable, http.StatusUnprocessableEntity, "Room cannot be selected for this reservation"},
	{errs.ErrDomainValidation, http.StatusUnprocessableEntity, "Invalid reservation window"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrReservationConflict, http.StatusConflict, "Room is not available for these dates"},
}

// abortWithUsecaseError maps use case failures onto HTTP statuses. A conflict carries
// the repository's own wording when there is one.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if !errs.Is(err, m.target) {
			continue
		}
		msg := m.msg
		var repoErr infra.RepositoryError
		if m.status == http.StatusConflict && errors.As(err, &repoErr) && repoErr.Message() != "" {
			msg = repoErr.Message()
		}
		httperr.AbortWithError(c, m.status, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// renderOK writes a mapped response, or a 500 when the mapping failed.
func renderOK[T any](c *gin.Context, resp T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
