package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fyyur",
		Short: "Fyyur - venue and artist booking",
		Long: `Fyyur lists venues and artists and books shows between them.
An artist with declared availability windows can only be booked inside
one of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	cmd.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd(), newAreasCmd())
	return cmd
}

// Execute runs the root command and prints any error in red on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func wrap(step string, err error) error {
	return fmt.Errorf("%s: %w", step, err)
}
