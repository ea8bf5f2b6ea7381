// Package cli implements roomctl, an offline view of room occupancy over a snapshot file.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/infra/yamlstore"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	file       string
	timeZone   string
	now        string
	outputJSON bool
	verbose    bool
}

// env is what every subcommand runs against once the snapshot is loaded.
type env struct {
	out          io.Writer
	table        bool
	store        *yamlstore.Store
	dashboard    queries.DashboardQueries
	reservations queries.ReservationQueries
}

// NewRootCmd builds the command tree. Output goes to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "roomctl",
		Short:        "Inspect room occupancy from a hotel snapshot file",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.file == "" {
				return fmt.Errorf("--file is required")
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "hotel.yaml", "Snapshot file (YAML)")
	flags.StringVar(&opts.timeZone, "tz", "", "Hotel time zone, overrides the file")
	flags.StringVar(&opts.now, "now", "", "Evaluate at this RFC 3339 instant, overrides the file")
	flags.BoolVar(&opts.outputJSON, "json", false, "Output JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log skipped records and dangling references")

	load := func() (*env, error) {
		return opts.load(out, errOut)
	}
	root.AddCommand(dashboardCmd(load))
	root.AddCommand(timelineCmd(load))
	root.AddCommand(swapCmd(load))
	root.AddCommand(candidatesCmd(load))
	root.AddCommand(availabilityCmd(load))
	return root
}

func (o *options) load(out, errOut io.Writer) (*env, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := yamlstore.Load(o.file)
	if err != nil {
		return nil, err
	}

	zone := o.timeZone
	if zone == "" {
		zone = store.TimeZone()
	}
	cal, err := occupancy.LoadCalendar(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", zone, err)
	}

	clk, err := o.clock(store)
	if err != nil {
		return nil, err
	}

	return &env{
		out:          out,
		table:        !o.outputJSON && isTerminal(out),
		store:        store,
		dashboard:    queries.NewDashboardQueries(store, clk, cal, logger),
		reservations: queries.NewReservationQueries(store.Reservations(), store.Rooms(), store, cal),
	}, nil
}

func (o *options) clock(store *yamlstore.Store) (clock.Clock, error) {
	if o.now != "" {
		at, err := time.Parse(time.RFC3339, o.now)
		if err != nil {
			return nil, fmt.Errorf("invalid --now %q (expected RFC 3339)", o.now)
		}
		return clock.NewFixedClock(at), nil
	}
	if at, ok := store.Now(); ok {
		return clock.NewFixedClock(at), nil
	}
	return clock.NewRealClock(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
