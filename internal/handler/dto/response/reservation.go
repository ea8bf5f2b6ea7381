package response

import (
	"time"

	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type SwapDeltaResponse struct {
	NewRoomID   *uuid.UUID `json:"new_room_id,omitempty"`
	NewCheckin  *string    `json:"new_checkin,omitempty"`
	NewCheckout *string    `json:"new_checkout,omitempty"`
}

type CostResponse struct {
	CurrentNights   int   `json:"current_nights"`
	NewNights       int   `json:"new_nights"`
	CurrentEstimate int64 `json:"current_estimate"`
	NewEstimate     int64 `json:"new_estimate"`
	Difference      int64 `json:"difference"`
}

type SwapPreviewResponse struct {
	Reservation  BookingResponse   `json:"reservation"`
	CurrentRoom  *RoomResponse     `json:"current_room,omitempty"`
	SelectedRoom *RoomResponse     `json:"selected_room,omitempty"`
	Delta        SwapDeltaResponse `json:"delta"`
	Cost         CostResponse      `json:"cost"`
	NewStartAt   time.Time         `json:"new_start_at"`
	NewEndAt     time.Time         `json:"new_end_at"`
}

type SwapResponse struct {
	Message string               `json:"message"`
	Preview *SwapPreviewResponse `json:"preview"`
}

type ChangeRoomResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        uuid.UUID `json:"room_id"`
	Message       string    `json:"message"`
}

type CandidatesResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func FromSwapPreviewView(v *queries.SwapPreviewView) (*SwapPreviewResponse, error) {
	booking, err := FromBookingView(v.Reservation)
	if err != nil {
		return nil, err
	}
	resp := &SwapPreviewResponse{
		Reservation: booking,
		NewStartAt:  v.NewStartAt,
		NewEndAt:    v.NewEndAt,
	}
	if err := copyFields(&resp.Delta, &v.Delta); err != nil {
		return nil, err
	}
	if err := copyFields(&resp.Cost, &v.Cost); err != nil {
		return nil, err
	}
	if resp.CurrentRoom, err = roomPtr(v.CurrentRoom); err != nil {
		return nil, err
	}
	if resp.SelectedRoom, err = roomPtr(v.SelectedRoom); err != nil {
		return nil, err
	}
	return resp, nil
}

func roomPtr(v *queries.RoomView) (*RoomResponse, error) {
	if v == nil {
		return nil, nil
	}
	r, err := FromRoomView(*v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func FromSwapResult(r *commands.SwapResult) (*SwapResponse, error) {
	preview, err := FromSwapPreviewView(r.Preview)
	if err != nil {
		return nil, err
	}
	return &SwapResponse{
		Message: r.Message,
		Preview: preview,
	}, nil
}

func FromChangeRoomResult(r *commands.ChangeRoomResult) (*ChangeRoomResponse, error) {
	var resp ChangeRoomResponse
	if err := copyFields(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromCandidates(rooms []queries.RoomView) (*CandidatesResponse, error) {
	out, err := FromRoomViews(rooms)
	if err != nil {
		return nil, err
	}
	return &CandidatesResponse{Rooms: out}, nil
}
