package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xcsweep/xcsweep/internal/logging"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "xcs",
	Short: "Free up disk space used by Xcode caches",
	Long: `xcsweep - Free up disk space used by Xcode caches.

Measures derived data, device support files, simulator caches and other
Xcode cache categories, lets you pick what to remove, and moves the
selected data to the trash with per-path progress and accounting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invoked without a subcommand: run the interactive cleanup.
		return runClean(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
