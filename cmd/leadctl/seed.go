package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/platform/storage"
	"github.com/SscSPs/leadvault_backend/internal/utils/leadcsv"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Manage the seed lead dataset",
	}
	cmd.AddCommand(seedPushCmd())
	return cmd
}

func seedPushCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "push [csv-file]",
		Short: "Upload a seed CSV to the configured storage backend",
		Long: `Validate a seed CSV and upload it under SEED_CSV_KEY (or --key) to the
backend selected by STORAGE_TYPE. Users import it with POST /api/import/seed.

Examples:
  leadctl seed push ./seed_leads.csv
  STORAGE_TYPE=s3 AWS_S3_BUCKET=leadvault-seeds leadctl seed push ./seed_leads.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if key == "" {
				key = cfg.SeedCSVKey
			}

			rows, err := readSeedFile(args[0])
			if err != nil {
				return err
			}

			store, err := storage.NewStorage(cmd.Context(), storage.ConfigFromApp(cfg))
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			if err := store.Put(cmd.Context(), key, f); err != nil {
				return fmt.Errorf("failed to upload seed file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d rows to %s (%s)\n", rows, key, cfg.StorageType)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "storage key (default SEED_CSV_KEY)")

	return cmd
}

// readSeedFile parses path as a lead CSV and returns its row count.
func readSeedFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := leadcsv.Read(f, "seed")
	if err != nil {
		return 0, fmt.Errorf("invalid seed CSV: %w", err)
	}
	return len(rows), nil
}
