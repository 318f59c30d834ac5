package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/internal/render"
	"github.com/nelimee/sqmap/pkg/bloch"
)

var precisionFlags struct {
	metric  string
	summary string
	output  string
}

var precisionCmd = &cobra.Command{
	Use:   "precision BACKUP_FILE...",
	Short: "Plot reconstruction precision against shot count",
	Long: `Plot the obtained precision for different numbers of shots and
different post-processing methods, one log-log curve per method. Each
backup file contributes the metric values of its first qubit at its
recorded shot count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrecision,
}

func init() {
	f := precisionCmd.Flags()
	f.StringVar(&precisionFlags.metric, "metric", "fidelity",
		"Metric to plot: fidelity, infidelity or purity")
	f.StringVar(&precisionFlags.summary, "summary", "mean",
		"Summary used per backup file: mean, median, min or max")
	f.StringVarP(&precisionFlags.output, "output", "o", "",
		"Output file or directory (default: configured output directory)")
}

func runPrecision(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	metric, err := render.MetricByName(precisionFlags.metric)
	if err != nil {
		return err
	}
	summary, err := render.SummaryByName(precisionFlags.summary)
	if err != nil {
		return err
	}

	series := render.PrecisionSeries{}
	basisNames := map[string]bool{}
	for _, path := range args {
		artifact, err := backup.Load(path)
		if err != nil {
			return err
		}
		if artifact.QubitNumber == 0 {
			return fmt.Errorf("%s: backup holds no qubit data", path)
		}
		if len(artifact.DensityMatrices[0]) == 0 {
			return fmt.Errorf("%s: backup holds no measured points", path)
		}
		if artifact.QubitNumber != 1 {
			a.log.Warn().
				Str("backup_file", path).
				Int("qubits", artifact.QubitNumber).
				Msg("Backup holds more than one qubit, using qubit 0")
		}
		basisNames[artifact.BasisName] = true

		values := make([]float64, 0, len(artifact.DensityMatrices[0]))
		for _, p := range artifact.DensityMatrices[0] {
			ideal, err := bloch.CartesianToDensity(p.Ideal[0], p.Ideal[1], p.Ideal[2])
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			values = append(values, metric(ideal, p.Rho))
		}

		method := artifact.PostProcessingMethod
		if series[method] == nil {
			series[method] = map[int][]float64{}
		}
		series[method][artifact.Shots] = values
	}
	if len(basisNames) > 1 {
		names := make([]string, 0, len(basisNames))
		for name := range basisNames {
			names = append(names, name)
		}
		a.log.Warn().Strs("basis_names", names).Msg("Backups use several tomography bases")
	}

	out := precisionFlags.output
	if out == "" || isDir(out) {
		dir := a.cfg.OutputDir
		if out != "" {
			dir = out
		}
		out = filepath.Join(dir, fmt.Sprintf("precision_%s_%s.png", precisionFlags.summary, precisionFlags.metric))
	}

	opts := render.PrecisionOptions{
		Title: fmt.Sprintf("Plot of the obtained %s %s for a varying\nnumber of shots performed on an ideal simulator.",
			precisionFlags.summary, precisionFlags.metric),
		MetricName: precisionFlags.metric,
		Summary:    summary,
	}
	if err := a.renderer.Precision(series, opts, out); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
