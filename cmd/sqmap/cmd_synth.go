package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/internal/synth"
)

var synthFlags struct {
	qubits        int
	points        int
	depolarizing  float64
	jitter        float64
	seed          int64
	shots         int
	backendName   string
	basisName     string
	method        string
	processorType string
}

var synthCmd = &cobra.Command{
	Use:    "synth OUTPUT_FILE",
	Short:  "Generate a synthetic tomography backup file",
	Hidden: true,
	Long: `Generate a backup file with approximately equidistant ideal states and
noisy reconstructions. Useful to try the renderers without access to
real tomography data.`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	f := synthCmd.Flags()
	f.IntVar(&synthFlags.qubits, "qubits", 1, "Number of qubits")
	f.IntVar(&synthFlags.points, "points", 100, "Number of ideal states per qubit")
	f.Float64Var(&synthFlags.depolarizing, "depolarizing", 0.05, "Depolarizing noise strength in [0, 1]")
	f.Float64Var(&synthFlags.jitter, "jitter", 0.02, "Angular jitter standard deviation in radians")
	f.Int64Var(&synthFlags.seed, "seed", 0, "Random seed")
	f.IntVar(&synthFlags.shots, "shots", 1024, "Shot count recorded in the backup")
	f.StringVar(&synthFlags.backendName, "backend-name", "synthetic", "Backend name recorded in the backup")
	f.StringVar(&synthFlags.basisName, "basis-name", "pauli", "Tomography basis name recorded in the backup")
	f.StringVar(&synthFlags.method, "method", "ideal", "Post-processing method name recorded in the backup")
	f.StringVar(&synthFlags.processorType, "processor-type", "Canary r1.2", "Processor type recorded in the backup")
}

func runSynth(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	artifact, err := synth.Generate(synth.Options{
		QubitNumber:          synthFlags.qubits,
		PointNumber:          synthFlags.points,
		Depolarizing:         synthFlags.depolarizing,
		Jitter:               synthFlags.jitter,
		Seed:                 synthFlags.seed,
		BackendName:          synthFlags.backendName,
		BasisName:            synthFlags.basisName,
		PostProcessingMethod: synthFlags.method,
		Shots:                synthFlags.shots,
		ProcessorType:        synthFlags.processorType,
	})
	if err != nil {
		return err
	}

	if err := backup.Save(args[0], artifact); err != nil {
		return err
	}
	a.log.Info().
		Str("backup_file", args[0]).
		Int("qubits", synthFlags.qubits).
		Int("points", synthFlags.points).
		Msg("Synthetic backup written")
	fmt.Fprintln(cmd.OutOrStdout(), args[0])
	return nil
}
