package main

import (
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/platform/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply every pending "up" migration to the database named by PGSQL_URL.

Examples:
  leadctl migrate
  leadctl migrate --path file:///srv/leadvault/migrations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is not set")
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			return database.RunMigrations(cfg.DatabaseURL, path, newLogger())
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "migrate source URL (default MIGRATIONS_PATH)")

	return cmd
}
