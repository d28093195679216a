package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cesargomez89/fyyur/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load venues, artists and shows from a YAML fixture file",
		Long: `Load fixtures through the booking services. Shows are booked like
any other request, so a show outside the artist's availability is
reported as rejected instead of being stored.

Example:
  fyyur seed --file fixtures.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixtures, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			report, err := seed.Apply(cmd.Context(), rt.app, fixtures, rt.log)
			if report != nil {
				printReport(cmd, report)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "Fixture file to load")
	return cmd
}

func printReport(cmd *cobra.Command, r *seed.Report) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Fprintf(out, "✓ %d venues, %d artists\n", r.Venues, r.Artists)
	fmt.Fprintf(out, "  %d availability windows, %d albums, %d songs\n", r.Availability, r.Albums, r.Songs)
	green.Fprintf(out, "✓ %d shows booked\n", r.ShowsBooked)
	for _, rej := range r.Rejected {
		yellow.Fprintf(out, "⚠️  rejected: %s at %s on %s (outside availability)\n", rej.Artist, rej.Venue, rej.StartTime)
	}
}
