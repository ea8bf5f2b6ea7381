package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func dashboardCmd(load func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the state of every room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := load()
			if err != nil {
				return err
			}
			view, err := e.dashboard.GetDashboard(cmd.Context())
			if err != nil {
				return describe(err)
			}
			if !e.table {
				return writeJSON(e.out, view)
			}
			return printDashboard(e, view)
		},
	}
}

func printDashboard(e *env, view *queries.DashboardView) error {
	s := view.Stats
	fmt.Fprintf(e.out, "%s (%s)\n", view.GeneratedAt.Format("2006-01-02 15:04"), view.TimeZone)
	fmt.Fprintf(e.out, "total %d  maintenance %d  occupied %d  arrival %d  reserved %d  available %d\n\n",
		s.Total, s.Maintenance, s.Occupied, s.Arrival, s.Reserved, s.Available)

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROOM\tSTATE\tDETAIL\tNEXT")
	for _, r := range view.Rooms {
		detail := r.Label
		if detail == "" {
			detail = r.CurrentActivity
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Room.Number, r.State, detail, nextBookings(r.FutureBookings))
	}
	return w.Flush()
}

func nextBookings(bs []queries.BookingView) string {
	if len(bs) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, b.Checkin+".."+b.Checkout)
	}
	return strings.Join(parts, ", ")
}
