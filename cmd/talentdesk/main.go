// Package main provides the entry point for the TalentDesk HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentdesk",
	Short: "TalentDesk recruitment API server",
	Long:  "TalentDesk runs the recruitment platform: public job listings and resume intake for candidates, and application, candidate, and interview management for the hiring team, via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
