package render

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// PrecisionSeries maps a post-processing method name to its metric values
// keyed by shot count. Every entry aggregates the per-point metric values
// of one backup file.
type PrecisionSeries map[string]map[int][]float64

// Summary reduces a sample of per-point metric values to one number.
type Summary func(values []float64) float64

// SummaryByName resolves a summary reducer from its CLI name.
func SummaryByName(name string) (Summary, error) {
	switch name {
	case "mean", "":
		return func(v []float64) float64 { return stat.Mean(v, nil) }, nil
	case "median":
		return func(v []float64) float64 {
			sorted := append([]float64(nil), v...)
			sort.Float64s(sorted)
			return stat.Quantile(0.5, stat.Empirical, sorted, nil)
		}, nil
	case "min":
		return floats.Min, nil
	case "max":
		return floats.Max, nil
	default:
		return nil, fmt.Errorf("unknown summary %q (known: mean, median, min, max)", name)
	}
}

// PrecisionOptions configures the shot-dependency curves.
type PrecisionOptions struct {
	Title      string
	MetricName string
	Summary    Summary
}

// Precision draws one log-log curve per post-processing method: the
// summarized metric against the number of shots used.
func (r *Renderer) Precision(series PrecisionSeries, opts PrecisionOptions, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no precision data to render")
	}
	summary := opts.Summary
	if summary == nil {
		summary, _ = SummaryByName("mean")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Number of shots used"
	p.Y.Label.Text = opts.MetricName
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	// Stable curve order regardless of map iteration.
	methods := make([]string, 0, len(series))
	for method := range series {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	var args []interface{}
	for _, method := range methods {
		byShots := series[method]
		shots := make([]int, 0, len(byShots))
		for s := range byShots {
			shots = append(shots, s)
		}
		sort.Ints(shots)

		pts := make(plotter.XYs, 0, len(shots))
		for _, s := range shots {
			if len(byShots[s]) == 0 {
				return fmt.Errorf("method %q has no metric values at %d shots", method, s)
			}
			y := summary(byShots[s])
			// Log scale cannot represent a perfect reconstruction.
			if y <= 0 {
				y = 1e-12
			}
			pts = append(pts, plotter.XY{X: float64(s), Y: y})
		}
		args = append(args, method, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("failed to build precision curves: %w", err)
	}

	r.log.Debug().
		Str("path", path).
		Int("methods", len(methods)).
		Msg("Writing precision figure")
	return r.savePlot(p, path)
}
