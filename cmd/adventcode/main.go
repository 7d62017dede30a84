// Adventcode runs daily programming puzzle solutions.
//
// It discovers day<N>.go solution modules, shows their titles and
// input-file readiness, and runs a selected day and part against an
// input file or stdin.
//
// Usage:
//
//	adventcode [flags]
//	adventcode [command]
//
// Running without a --day flag launches the interactive picker.
// See 'adventcode --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adventcode/internal/logging"
	"adventcode/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventcode",
	Short: "Advent of Code puzzle runner",
	Long: `A runner for daily programming puzzle solutions.

Solutions live in day<N>.go modules that are discovered at startup,
along with their titles and default day<N>.txt input files.

With --day, the selected solution runs directly and prints its answer.
Without it, an interactive picker lets you browse days and run parts.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adventcode %s (commit: %s)\n", version.Version, version.Commit)
	},
}
