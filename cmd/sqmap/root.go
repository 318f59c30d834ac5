package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sqmap",
	Short: "Visualise single-qubit state tomography results",
	Long: "sqmap renders tomography backup files saved after reconstructing\n" +
		"single-qubit density matrices: flattened Bloch-sphere maps, polar\n" +
		"displacement summaries, whole-chip grids and shot-count precision curves.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(blochCmd)
	rootCmd.AddCommand(conciseCmd)
	rootCmd.AddCommand(projectedCmd)
	rootCmd.AddCommand(chipCmd)
	rootCmd.AddCommand(precisionCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.Version = version
}
