package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marisol/talentdesk/internal/docstore"
	"github.com/marisol/talentdesk/internal/jobimport"
)

var importSchemaPath string

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs <listings.json>",
	Short: "Import job listings from a JSON file",
	Long: `Validate a JSON file of job listings against the listing schema and
insert them into the document store. Nothing is inserted when validation
fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportJobs,
}

func init() {
	importJobsCmd.Flags().StringVar(&importSchemaPath, "schema", "", "Path to the listing schema (default: auto-detected)")
	rootCmd.AddCommand(importJobsCmd)
}

func runImportJobs(cmd *cobra.Command, args []string) error {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGODB_URI environment variable is required")
	}
	mongoDatabase := os.Getenv("MONGODB_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "talentdesk"
	}

	schemaPath := importSchemaPath
	if schemaPath == "" {
		schemaPath = jobimport.ResolveSchemaPath(jobimport.DefaultSchemaPath)
		if schemaPath == "" {
			return fmt.Errorf("listing schema not found, pass --schema")
		}
	}

	ctx := context.Background()
	store, err := docstore.Connect(ctx, mongoURI, mongoDatabase)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	inserted, err := jobimport.Import(ctx, store, schemaPath, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d job listing(s)\n", inserted)
	return nil
}
