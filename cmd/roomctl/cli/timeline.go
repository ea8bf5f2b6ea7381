package cli

import (
	"fmt"
	"text/tabwriter"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func timelineCmd(load func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <room-number>",
		Short: "Show upcoming bookings of a room with the free gaps between them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load()
			if err != nil {
				return err
			}
			rm, err := e.store.FindByNumber(args[0])
			if err != nil {
				return fmt.Errorf("room %s not found", args[0])
			}
			view, err := e.dashboard.GetRoomTimeline(cmd.Context(), rm.ID())
			if err != nil {
				return describe(err)
			}
			if !e.table {
				return writeJSON(e.out, view)
			}
			return printTimeline(e, view)
		},
	}
}

func printTimeline(e *env, view *queries.RoomTimelineView) error {
	fmt.Fprintf(e.out, "Room %s: %s, free from %s\n\n",
		view.RoomState.Room.Number, view.RoomState.State, view.AnchorEnd.Format("2006-01-02 15:04"))
	if len(view.Segments) == 0 {
		fmt.Fprintln(e.out, "No upcoming bookings")
		return nil
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tFROM\tTO\tDETAIL")
	for _, s := range view.Segments {
		if s.Booking != nil {
			fmt.Fprintf(w, "booking\t%s\t%s\t%s\n", s.Booking.Checkin, s.Booking.Checkout, s.Booking.FullName)
			continue
		}
		fmt.Fprintf(w, "free\t%s\t%s\t%d day(s)\n", s.From.Format("2006-01-02"), s.To.Format("2006-01-02"), s.Days)
	}
	return w.Flush()
}
