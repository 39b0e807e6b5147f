package commands

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/salesmaster_cloud/internal/platform/config"
	"github.com/SscSPs/salesmaster_cloud/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(newLogger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.ValidateDatabase(); err != nil {
				return err
			}
			applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
			if err != nil {
				return err
			}
			if applied {
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "schema already up to date")
			}
			return nil
		},
	}
}
