// Package cli wires the snapkeep commands and maps failures to the
// stable exit codes external schedulers alert on.
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the snapkeep command tree.
func Execute(version string) error {
	rootCmd := &cobra.Command{
		Use:   "snapkeep",
		Short: "Scheduled backup archiver with weekly rotation",
		Long: `snapkeep builds a compressed archive of configured paths into a daily
store, promotes one qualifying daily archive per week into a weekly
store, and purges daily archives past the retention window.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to config file")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDaemonCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd.Execute()
}
