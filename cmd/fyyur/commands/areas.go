package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cesargomez89/fyyur/internal/app"
)

func newAreasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "Print venues grouped by city and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			areas, err := rt.app.Search.VenuesByLocality(cmd.Context())
			if err != nil {
				return err
			}
			printAreas(cmd.OutOrStdout(), areas)
			return nil
		},
	}
}

func printAreas(out io.Writer, areas []app.Area) {
	if len(areas) == 0 {
		fmt.Fprintln(out, "No venues listed.")
		return
	}
	heading := color.New(color.FgCyan, color.Bold)
	upcoming := color.New(color.FgGreen)
	for _, area := range areas {
		heading.Fprintf(out, "%s, %s\n", area.City, area.State)
		for _, v := range area.Venues {
			fmt.Fprintf(out, "  %-4d %s", v.ID, v.Name)
			if v.NumUpcomingShows > 0 {
				upcoming.Fprintf(out, "  (%d upcoming)", v.NumUpcomingShows)
			}
			fmt.Fprintln(out)
		}
	}
}
