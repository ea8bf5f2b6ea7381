package cli

import (
	"fmt"
	"text/tabwriter"

	"hotel-backoffice/internal/infra/yamlstore"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func swapCmd(load func() (*env, error)) *cobra.Command {
	var targetRoom, checkin, checkout string

	cmd := &cobra.Command{
		Use:   "swap <reservation-id>",
		Short: "Preview moving a reservation to another room or dates",
		Long:  "Validates the change and projects its cost. The snapshot file is never modified.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}

			form := queries.SwapForm{Checkin: checkin, Checkout: checkout}
			if targetRoom != "" {
				form.RoomID = yamlstore.RoomID(targetRoom)
			}
			view, err := e.reservations.PreviewSwap(cmd.Context(), id, form)
			if err != nil {
				return describe(err)
			}
			if !e.table {
				return writeJSON(e.out, view)
			}
			return printSwap(e, view)
		},
	}

	cmd.Flags().StringVar(&targetRoom, "room", "", "Target room number")
	cmd.Flags().StringVar(&checkin, "checkin", "", "New check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkout, "checkout", "", "New check-out date (YYYY-MM-DD)")
	return cmd
}

func printSwap(e *env, view *queries.SwapPreviewView) error {
	fmt.Fprintf(e.out, "Reservation %s (%s)\n\n", view.Reservation.ID, view.Reservation.FullName)

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tCURRENT\tNEW")
	fmt.Fprintf(w, "room\t%s\t%s\n", roomNumber(view.CurrentRoom), roomNumber(view.SelectedRoom))
	fmt.Fprintf(w, "check-in\t%s\t%s\n", view.Reservation.Checkin, orSame(view.Delta.NewCheckin))
	fmt.Fprintf(w, "check-out\t%s\t%s\n", view.Reservation.Checkout, orSame(view.Delta.NewCheckout))
	fmt.Fprintf(w, "nights\t%d\t%d\n", view.Cost.CurrentNights, view.Cost.NewNights)
	fmt.Fprintf(w, "estimate\t%d\t%d\n", view.Cost.CurrentEstimate, view.Cost.NewEstimate)
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.out, "\ndifference %+d\n", view.Cost.Difference)
	return err
}

func candidatesCmd(load func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <reservation-id>",
		Short: "List rooms a reservation can be moved to",
		Long:  "Rooms that are not under maintenance, other than the reservation's own room.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			rooms, err := e.reservations.ChangeRoomCandidates(cmd.Context(), id)
			if err != nil {
				return describe(err)
			}
			return printRooms(e, rooms)
		},
	}
}

func availabilityCmd(load func() (*env, error)) *cobra.Command {
	var checkin, checkout string

	cmd := &cobra.Command{
		Use:   "availability <reservation-id>",
		Short: "List rooms free for a reservation's window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReservationID(args[0])
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			rooms, err := e.reservations.SwapCandidates(cmd.Context(), id, checkin, checkout)
			if err != nil {
				return describe(err)
			}
			return printRooms(e, rooms)
		},
	}

	cmd.Flags().StringVar(&checkin, "checkin", "", "Check-in date (YYYY-MM-DD), defaults to the reservation's")
	cmd.Flags().StringVar(&checkout, "checkout", "", "Check-out date (YYYY-MM-DD), defaults to the reservation's")
	return cmd
}

func printRooms(e *env, rooms []queries.RoomView) error {
	if !e.table {
		return writeJSON(e.out, rooms)
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROOM\tCATEGORY\tRATE")
	for _, r := range rooms {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Number, r.Category, r.Rate)
	}
	return w.Flush()
}

func parseReservationID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid reservation id %q", arg)
	}
	return id, nil
}

func roomNumber(r *queries.RoomView) string {
	if r == nil {
		return "-"
	}
	return r.Number
}

func orSame(v *string) string {
	if v == nil {
		return "(same)"
	}
	return *v
}
