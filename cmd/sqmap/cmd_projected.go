package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/render"
)

var projectedFlags struct {
	qubitIndex int
	output     string
	projection string
}

var projectedCmd = &cobra.Command{
	Use:   "projected BACKUP_FILE",
	Short: "Plot reconstructed density matrices on a map projection",
	Long: `Plot the reconstructed density matrices over a cartographic projection
of the Bloch sphere, reading the state space like an earth map: the
north pole is |0>, the south pole is |1> and equally weighted
superpositions sit on the equator.`,
	Args: cobra.ExactArgs(1),
	RunE: runProjected,
}

func init() {
	f := projectedCmd.Flags()
	f.IntVarP(&projectedFlags.qubitIndex, "qubit-index", "i", -1,
		"Index of the qubit to plot. Default to all qubits if not given.")
	f.StringVarP(&projectedFlags.output, "output", "o", "",
		"Output file or directory (default: configured output directory)")
	f.StringVar(&projectedFlags.projection, "projection", "equirectangular",
		"Map projection: equirectangular or sinusoidal")
}

func runProjected(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	proj, err := render.ProjectionByName(projectedFlags.projection)
	if err != nil {
		return err
	}

	artifact, selections, err := a.selectQubits(args[0], projectedFlags.qubitIndex)
	if err != nil {
		return err
	}

	multi := len(selections) > 1
	for _, sel := range selections {
		path := a.figurePath(projectedFlags.output, args[0], "projected", sel.Index, multi)
		opts := render.ProjectedOptions{
			Title:      qubitTitle(artifact, sel.Index),
			Projection: proj,
		}
		if err := a.renderer.Projected(sel.Points, opts, path); err != nil {
			return fmt.Errorf("failed to render qubit %d: %w", sel.Index, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
