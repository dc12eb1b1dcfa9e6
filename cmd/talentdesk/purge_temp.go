package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisol/talentdesk/internal/db"
)

var purgeTempCmd = &cobra.Command{
	Use:   "purge-temp",
	Short: "Delete expired temporary candidates",
	Long: `Delete temporary candidates whose 24 hour review window has passed.
Expiry is not enforced on reads, so this is meant to run periodically (e.g.
from cron) to keep abandoned uploads from accumulating.`,
	RunE: runPurgeTemp,
}

func init() {
	rootCmd.AddCommand(purgeTempCmd)
}

func runPurgeTemp(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	purged, err := database.PurgeExpiredTemporaryCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge temporary candidates: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Purged %d expired temporary candidate(s)\n", purged)
	return nil
}
