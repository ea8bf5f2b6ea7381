package request

import (
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

// SwapRequest is the swap form. Omitted fields keep the reservation's current value.
type SwapRequest struct {
	RoomID   *uuid.UUID `json:"room_id"`
	Checkin  *string    `json:"checkin"`
	Checkout *string    `json:"checkout"`
}

func (r SwapRequest) ToForm() queries.SwapForm {
	return queries.SwapForm{
		RoomID:   patch.Coalesce(r.RoomID, uuid.Nil),
		Checkin:  patch.Coalesce(r.Checkin, ""),
		Checkout: patch.Coalesce(r.Checkout, ""),
	}
}

type ChangeRoomRequest struct {
	RoomID uuid.UUID `json:"room_id" binding:"required"`
}

// Malformed dates are rejected by the use case with a 422, not by binding.
type SwapCandidatesQuery struct {
	Checkin  string `form:"checkin"`
	Checkout string `form:"checkout"`
}
