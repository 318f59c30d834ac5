package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/internal/render"
)

var chipFlags struct {
	output string
}

var chipCmd = &cobra.Command{
	Use:   "chip BACKUP_FILE",
	Short: "Plot one flatmap per qubit laid out like the physical chip",
	Long: `Plot a grid of per-qubit flatmaps positioned like the qubits on the
processor the backup was taken on. The processor type recorded in the
backup selects the layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runChip,
}

func init() {
	f := chipCmd.Flags()
	f.StringVarP(&chipFlags.output, "output", "o", "",
		"Output file or directory (default: configured output directory)")
}

func runChip(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	artifact, err := backup.Load(args[0])
	if err != nil {
		return err
	}
	a.log.Info().
		Str("backup_file", args[0]).
		Str("processor_type", artifact.ProcessorType).
		Int("qubits", artifact.QubitNumber).
		Msg("Backup artifact loaded")

	path := a.figurePath(chipFlags.output, args[0], "chip", -1, false)
	opts := render.ChipOptions{
		Title: fmt.Sprintf("Backend '%s' (%s)", artifact.BackendName, artifact.ProcessorType),
	}
	if err := a.renderer.Chip(artifact, opts, path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
