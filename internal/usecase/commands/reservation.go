package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"fmt"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type SwapResult struct {
	Preview *queries.SwapPreviewView
	Message string
}

type ChangeRoomResult struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
	Message       string
}

type ReservationCommands interface {
	Swap(ctx context.Context, id uuid.UUID, form queries.SwapForm) (*SwapResult, error)
	ChangeRoom(ctx context.Context, id, roomID uuid.UUID) (*ChangeRoomResult, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ReservationQueries
}

func NewReservationCommands(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		queries: reservationQueries,
	}
}

// Swap recomputes the plan from the stored reservation and applies it. Validation
// errors from the plan are returned unchanged.
func (c *reservationCommandsImpl) Swap(ctx context.Context, id uuid.UUID, form queries.SwapForm) (*SwapResult, error) {
	view, err := c.queries.PreviewSwap(ctx, id, form)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStay(view.NewStartAt, view.NewEndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	roomID := view.Reservation.RoomID
	if view.Delta.NewRoomID != nil {
		roomID = view.Delta.NewRoomID
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().ApplySwap(ctx, tx.DB(), id, roomID, stay)
	})
	if err != nil {
		return nil, mapWriteErr(err)
	}

	return &SwapResult{
		Preview: view,
		Message: "Reservation updated",
	}, nil
}

// ChangeRoom moves the reservation to another selectable room, keeping its dates.
func (c *reservationCommandsImpl) ChangeRoom(ctx context.Context, id, roomID uuid.UUID) (*ChangeRoomResult, error) {
	target, err := c.queries.IsChangeRoomCandidate(ctx, id, roomID)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().ChangeRoom(ctx, tx.DB(), id, roomID)
	})
	if err != nil {
		return nil, mapWriteErr(err)
	}

	return &ChangeRoomResult{
		ReservationID: id,
		RoomID:        roomID,
		Message:       fmt.Sprintf("Reservation moved to room %s", target.Number()),
	}, nil
}

func mapWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrReservationNotFound
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrReservationConflict)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
