package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nelimee/sqmap/internal/backup"
)

// FlatmapOptions configures the flattened Bloch-sphere view.
type FlatmapOptions struct {
	Title string
	// Metric colors the heatmap. Defaults to bloch.Infidelity.
	Metric MetricFunc
	// MetricLabel titles the colorbar.
	MetricLabel string
	// VMin and VMax pin the color range; nil means data-driven.
	VMin, VMax *float64
}

// Flatmap draws the inclination/azimuth heatmap of the metric with the
// ideal points as black dots and displacement arrows towards the
// reconstructed states, plus a colorbar marked at the mean value.
func (r *Renderer) Flatmap(points []backup.Point, opts FlatmapOptions, path string) error {
	s, err := newPointSeries(points, opts.Metric)
	if err != nil {
		return err
	}
	main, err := r.flatmapPlot(s, opts)
	if err != nil {
		return err
	}
	bar := r.colorBarPlot(s, opts)

	r.log.Debug().
		Str("path", path).
		Int("points", len(points)).
		Float64("metric_mean", s.zMean).
		Msg("Writing flatmap figure")
	return r.saveWithColorBar(main, bar, path)
}

// flatmapPlot builds the main flatmap panel. The vertical axis is drawn
// with the north pole (theta = 0) on top, matching an earth-map reading of
// the Bloch sphere.
func (r *Renderer) flatmapPlot(s *pointSeries, opts FlatmapOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "φ"
	p.Y.Label.Text = "θ"
	p.X.Min, p.X.Max = -math.Pi, math.Pi
	p.Y.Min, p.Y.Max = 0, math.Pi
	p.X.Tick.Marker = piTicks{min: -math.Pi, max: math.Pi, step: math.Pi / 2}
	p.Y.Tick.Marker = invertedThetaTicks{}

	// Interpolate the metric onto a fine grid, duplicating points on the
	// azimuthal seam so the map stays continuous across phi = ±pi.
	phiExt, thetaExt, vals := replicateSeam(2*math.Pi, s.phi, s.theta, s.z, s.dTheta, s.dPhi)
	zExt, dThetaExt, dPhiExt := vals[0], vals[1], vals[2]

	flipped := make([]float64, len(thetaExt))
	for i, th := range thetaExt {
		flipped[i] = math.Pi - th
	}

	g := interpolate(phiExt, flipped, zExt,
		linspace(-math.Pi, math.Pi, r.cfg.GridN),
		linspace(0, math.Pi, r.cfg.GridN/2))
	heat := plotter.NewHeatMap(g, r.heatPalette(s, opts.VMin, opts.VMax))
	heat.Min, heat.Max = colorRange(s, opts.VMin, opts.VMax)
	p.Add(heat)

	dots := make(plotter.XYs, len(phiExt))
	for i := range phiExt {
		dots[i] = plotter.XY{X: phiExt[i], Y: flipped[i]}
	}
	scatter, err := plotter.NewScatter(dots)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(1),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(scatter)

	arrows := make([]arrow, len(phiExt))
	for i := range phiExt {
		arrows[i] = arrow{
			x0: phiExt[i],
			y0: flipped[i],
			x1: phiExt[i] + dPhiExt[i],
			y1: flipped[i] - dThetaExt[i],
		}
	}
	p.Add(newArrowField(arrows))

	return p, nil
}

// colorBarPlot builds the vertical colorbar with a red line at the mean
// metric value.
func (r *Renderer) colorBarPlot(s *pointSeries, opts FlatmapOptions) *plot.Plot {
	min, max := colorRange(s, opts.VMin, opts.VMax)

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(min)
	cm.SetMax(max)

	bar := plot.New()
	bar.Title.Text = opts.MetricLabel
	cb := &plotter.ColorBar{ColorMap: cm}
	cb.Vertical = true
	bar.Add(cb)
	bar.HideX()

	meanLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: s.zMean}, {X: 1, Y: s.zMean}})
	if err == nil {
		meanLine.Color = color.RGBA{R: 220, A: 255}
		meanLine.Width = vg.Points(1)
		bar.Add(meanLine)
	}
	return bar
}

// heatPalette returns the heatmap palette over the effective color range.
func (r *Renderer) heatPalette(s *pointSeries, vmin, vmax *float64) palette.Palette {
	min, max := colorRange(s, vmin, vmax)
	cm := moreland.ExtendedBlackBody()
	cm.SetMin(min)
	cm.SetMax(max)
	return cm.Palette(255)
}

// colorRange resolves the color scale, widening degenerate ranges so the
// palette stays usable when every point has the same value.
func colorRange(s *pointSeries, vmin, vmax *float64) (float64, float64) {
	min, max := s.zMin, s.zMax
	if vmin != nil {
		min = *vmin
	}
	if vmax != nil {
		max = *vmax
	}
	if max <= min {
		max = min + 1e-9
	}
	return min, max
}

// piTicks labels an angle axis in multiples of pi/2.
type piTicks struct {
	min, max, step float64
}

func (t piTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := t.min; v <= t.max+1e-9; v += t.step {
		ticks = append(ticks, plot.Tick{Value: v, Label: piLabel(v)})
	}
	return ticks
}

// invertedThetaTicks labels the flipped inclination axis: the plot draws
// pi - theta but the labels report theta itself.
type invertedThetaTicks struct{}

func (invertedThetaTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := 0.0; v <= math.Pi+1e-9; v += math.Pi / 4 {
		ticks = append(ticks, plot.Tick{Value: math.Pi - v, Label: piLabel(v)})
	}
	return ticks
}

func piLabel(v float64) string {
	switch {
	case math.Abs(v) < 1e-9:
		return "0"
	case math.Abs(v-math.Pi) < 1e-9:
		return "π"
	case math.Abs(v+math.Pi) < 1e-9:
		return "-π"
	case math.Abs(v-math.Pi/2) < 1e-9:
		return "π/2"
	case math.Abs(v+math.Pi/2) < 1e-9:
		return "-π/2"
	case math.Abs(v-math.Pi/4) < 1e-9:
		return "π/4"
	case math.Abs(v-3*math.Pi/4) < 1e-9:
		return "3π/4"
	default:
		return ""
	}
}
