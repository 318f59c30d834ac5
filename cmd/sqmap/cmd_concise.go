package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/render"
)

var conciseFlags struct {
	qubitIndex int
	output     string
}

var conciseCmd = &cobra.Command{
	Use:   "concise BACKUP_FILE",
	Short: "Plot a polar summary of reconstruction displacements",
	Long: `Plot every displacement between an ideally prepared state and its
reconstruction as an arrow from the origin of a polar diagram, one
figure per selected qubit. A quick read of the systematic drift a qubit
imposes on reconstructed states.`,
	Args: cobra.ExactArgs(1),
	RunE: runConcise,
}

func init() {
	f := conciseCmd.Flags()
	f.IntVarP(&conciseFlags.qubitIndex, "qubit-index", "i", -1,
		"Index of the qubit to plot. Default to all qubits if not given.")
	f.StringVarP(&conciseFlags.output, "output", "o", "",
		"Output file or directory (default: configured output directory)")
}

func runConcise(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	artifact, selections, err := a.selectQubits(args[0], conciseFlags.qubitIndex)
	if err != nil {
		return err
	}

	multi := len(selections) > 1
	for _, sel := range selections {
		path := a.figurePath(conciseFlags.output, args[0], "concise", sel.Index, multi)
		opts := render.ConciseOptions{Title: qubitTitle(artifact, sel.Index)}
		if err := a.renderer.Concise(sel.Points, opts, path); err != nil {
			return fmt.Errorf("failed to render qubit %d: %w", sel.Index, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
