package main

import (
	"os"

	"github.com/spf13/cobra"

	"triagedesk/internal/interfaces/cli/migrate"
	"triagedesk/internal/interfaces/cli/ratelimit"
	"triagedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triagedesk",
		Short: "TriageDesk - AI-assisted patient triage",
		Long:  `TriageDesk accepts patient symptom reports, classifies their urgency with an AI model, and serves the staff review queue.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		ratelimit.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
