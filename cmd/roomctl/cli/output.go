package cli

import (
	"encoding/json"
	"errors"
	"io"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/pkg/errs"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

var userErrors = []struct {
	target error
	msg    string
}{
	{occupancy.ErrNoChanges, "no changes to apply"},
	{occupancy.ErrInvalidDateRange, "check-out must be after check-in"},
	{occupancy.ErrInvalidDate, "dates must be formatted as YYYY-MM-DD"},
	{errs.ErrReservationNotFound, "reservation not found"},
	{errs.ErrRoomNotFound, "room not found"},
	{errs.ErrRoomNotSelectable, "room cannot be selected for this reservation"},
}

// describe turns use case errors into the one-line message printed by cobra.
func describe(err error) error {
	for _, u := range userErrors {
		if errs.Is(err, u.target) {
			return errors.New(u.msg)
		}
	}
	return err
}
