package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema to the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			log.Info("Schema applied", "driver", cfg.DBDriver)
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ schema applied (%s)\n", cfg.DBDriver)
			return nil
		},
	}
}
