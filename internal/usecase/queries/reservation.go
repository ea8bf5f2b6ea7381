package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"strings"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

// SwapPreview is the validated plan together with the records it was computed from.
type SwapPreview struct {
	Reservation  *reservation.Reservation
	CurrentRoom  *room.Room
	SelectedRoom *room.Room
	Plan         occupancy.SwapPlan
}

type ReservationQueries interface {
	Preview(ctx context.Context, id uuid.UUID, form SwapForm) (*SwapPreview, error)
	PreviewSwap(ctx context.Context, id uuid.UUID, form SwapForm) (*SwapPreviewView, error)
	ChangeRoomCandidates(ctx context.Context, id uuid.UUID) ([]RoomView, error)
	SwapCandidates(ctx context.Context, id uuid.UUID, checkin, checkout string) ([]RoomView, error)
	IsChangeRoomCandidate(ctx context.Context, id, roomID uuid.UUID) (*room.Room, error)
}

type reservationQueriesImpl struct {
	reservations ReservationStore
	rooms        RoomStore
	availability AvailabilityStore
	cal          occupancy.Calendar
}

func NewReservationQueries(
	reservations ReservationStore,
	rooms RoomStore,
	availability AvailabilityStore,
	cal occupancy.Calendar,
) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		availability: availability,
		cal:          cal,
	}
}

func (q *reservationQueriesImpl) Preview(ctx context.Context, id uuid.UUID, form SwapForm) (*SwapPreview, error) {
	res, err := q.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	var current *room.Room
	if res.RoomID() != nil {
		// A reservation whose room has been removed still previews with a zero current estimate.
		current, err = q.rooms.FindByID(ctx, *res.RoomID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	var selected *room.Room
	if form.RoomID != uuid.Nil {
		selected, err = q.findRoom(ctx, form.RoomID)
		if err != nil {
			return nil, err
		}
		// Moving into a closed room is refused; staying in one is not.
		if selected.IsUnderMaintenance() && !res.IsForRoom(selected.ID()) {
			return nil, errs.ErrRoomNotSelectable
		}
	}

	plan, err := q.cal.ComputeSwap(occupancy.SwapInput{
		Reservation:  res,
		NewRoomID:    form.RoomID,
		Checkin:      form.Checkin,
		Checkout:     form.Checkout,
		CurrentRoom:  current,
		SelectedRoom: selected,
	})
	if err != nil {
		return nil, err
	}

	return &SwapPreview{
		Reservation:  res,
		CurrentRoom:  current,
		SelectedRoom: selected,
		Plan:         plan,
	}, nil
}

func (q *reservationQueriesImpl) PreviewSwap(ctx context.Context, id uuid.UUID, form SwapForm) (*SwapPreviewView, error) {
	p, err := q.Preview(ctx, id, form)
	if err != nil {
		return nil, err
	}

	selected := p.SelectedRoom
	if p.Plan.Delta.NewRoomID == nil {
		selected = p.CurrentRoom
	}

	return &SwapPreviewView{
		Reservation:  toBookingView(p.Reservation, q.cal),
		CurrentRoom:  toRoomViewPtr(p.CurrentRoom),
		SelectedRoom: toRoomViewPtr(selected),
		Delta: SwapDeltaView{
			NewRoomID:   p.Plan.Delta.NewRoomID,
			NewCheckin:  p.Plan.Delta.NewCheckin,
			NewCheckout: p.Plan.Delta.NewCheckout,
		},
		Cost: CostView{
			CurrentNights:   p.Plan.Cost.CurrentNights,
			NewNights:       p.Plan.Cost.NewNights,
			CurrentEstimate: p.Plan.Cost.CurrentEstimate.Amount(),
			NewEstimate:     p.Plan.Cost.NewEstimate.Amount(),
			Difference:      p.Plan.Cost.Difference.Amount(),
		},
		NewStartAt: p.Plan.StartAt,
		NewEndAt:   p.Plan.EndAt,
	}, nil
}

func (q *reservationQueriesImpl) ChangeRoomCandidates(ctx context.Context, id uuid.UUID) ([]RoomView, error) {
	candidates, err := q.changeRoomCandidates(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoomViews(candidates), nil
}

func (q *reservationQueriesImpl) IsChangeRoomCandidate(ctx context.Context, id, roomID uuid.UUID) (*room.Room, error) {
	candidates, err := q.changeRoomCandidates(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, r := range candidates {
		if r.ID() == roomID {
			return r, nil
		}
	}
	return nil, errs.ErrRoomNotSelectable
}

func (q *reservationQueriesImpl) changeRoomCandidates(ctx context.Context, id uuid.UUID) ([]*room.Room, error) {
	res, err := q.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return occupancy.ChangeRoomCandidates(rooms, res.RoomID()), nil
}

// SwapCandidates lists rooms free for the requested window. Empty dates keep the
// reservation's own dates.
func (q *reservationQueriesImpl) SwapCandidates(ctx context.Context, id uuid.UUID, checkin, checkout string) ([]RoomView, error) {
	res, err := q.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	from, to := res.StartAt(), res.EndAt()
	if s := strings.TrimSpace(checkin); s != "" {
		if from, err = q.cal.ParseDate(s); err != nil {
			return nil, occupancy.ErrInvalidDate
		}
	}
	if s := strings.TrimSpace(checkout); s != "" {
		if to, err = q.cal.ParseDate(s); err != nil {
			return nil, occupancy.ErrInvalidDate
		}
	}
	if !to.After(from) {
		return nil, occupancy.ErrInvalidDateRange
	}

	exclude := res.ID()
	rooms, err := q.availability.FindAvailableRooms(ctx, from, to, &exclude)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toRoomViews(rooms), nil
}

func (q *reservationQueriesImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (q *reservationQueriesImpl) findRoom(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	r, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return r, nil
}
