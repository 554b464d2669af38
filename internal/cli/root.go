package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "edenlog",
	Short:        "Structured telemetry events for the eden daemon",
	Long:         "Describes the telemetry event schema and runs a small daemon that emits lifecycle events through the configured sink.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
