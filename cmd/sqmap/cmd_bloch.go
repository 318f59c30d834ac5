package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/render"
)

var blochFlags struct {
	qubitIndex int
	output     string
	metric     string
}

var blochCmd = &cobra.Command{
	Use:   "bloch BACKUP_FILE",
	Short: "Plot reconstructed density matrices on a flattened Bloch sphere",
	Long: `Plot the reconstructed density matrices of a tomography backup file as
a flattened Bloch-sphere heatmap with displacement arrows from each
ideally prepared state towards its reconstruction.

Without --qubit-index every qubit of the backup gets its own figure, in
ascending index order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBloch,
}

func init() {
	f := blochCmd.Flags()
	f.IntVarP(&blochFlags.qubitIndex, "qubit-index", "i", -1,
		"Index of the qubit to plot. Default to all qubits if not given.")
	f.StringVarP(&blochFlags.output, "output", "o", "",
		"Output file or directory (default: configured output directory)")
	f.StringVar(&blochFlags.metric, "metric", "infidelity",
		"Heatmap metric: fidelity, infidelity or purity")
}

func runBloch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	metric, err := render.MetricByName(blochFlags.metric)
	if err != nil {
		return err
	}

	artifact, selections, err := a.selectQubits(args[0], blochFlags.qubitIndex)
	if err != nil {
		return err
	}

	multi := len(selections) > 1
	for _, sel := range selections {
		path := a.figurePath(blochFlags.output, args[0], "bloch", sel.Index, multi)
		opts := render.FlatmapOptions{
			Title:       qubitTitle(artifact, sel.Index),
			Metric:      metric,
			MetricLabel: blochFlags.metric,
		}
		if err := a.renderer.Flatmap(sel.Points, opts, path); err != nil {
			return fmt.Errorf("failed to render qubit %d: %w", sel.Index, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
