package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nelimee/sqmap/internal/backup"
)

// ConciseOptions configures the polar displacement summary.
type ConciseOptions struct {
	Title  string
	Metric MetricFunc
}

// Concise draws every displacement as an arrow from the origin of a polar
// diagram: the arrow heading is the direction of the geographic
// displacement (longitude east, latitude north) and its length the
// displacement magnitude in degrees. A readable summary of where a qubit
// drags reconstructed states.
func (r *Renderer) Concise(points []backup.Point, opts ConciseOptions, path string) error {
	s, err := newPointSeries(points, opts.Metric)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "longitude displacement (°)"
	p.Y.Label.Text = "latitude displacement (°)"

	arrows := make([]arrow, len(s.dLat))
	maxRho := 0.0
	for i := range s.dLat {
		rho := math.Hypot(s.dLat[i], s.dLon[i])
		if rho > maxRho {
			maxRho = rho
		}
		arrows[i] = arrow{x0: 0, y0: 0, x1: s.dLon[i], y1: s.dLat[i]}
	}
	if maxRho == 0 {
		maxRho = 1
	}

	for _, ring := range ringGrid(maxRho) {
		p.Add(ring)
	}
	field := newArrowField(arrows)
	field.style.Color = color.RGBA{B: 160, A: 180}
	p.Add(field)

	p.X.Min, p.X.Max = -maxRho*1.05, maxRho*1.05
	p.Y.Min, p.Y.Max = -maxRho*1.05, maxRho*1.05

	r.log.Debug().
		Str("path", path).
		Int("points", len(points)).
		Float64("max_displacement_deg", maxRho).
		Msg("Writing concise figure")
	return r.savePlot(p, path)
}

// ringGrid builds concentric reference circles so the cartesian canvas
// reads like a polar diagram.
func ringGrid(maxRho float64) []*plotter.Line {
	var rings []*plotter.Line
	for _, frac := range []float64{0.25, 0.5, 0.75, 1} {
		radius := frac * maxRho
		pts := make(plotter.XYs, 0, 129)
		for i := 0; i <= 128; i++ {
			angle := 2 * math.Pi * float64(i) / 128
			pts = append(pts, plotter.XY{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			continue
		}
		line.Color = color.Gray{Y: 200}
		line.Width = vg.Points(0.4)
		rings = append(rings, line)
	}
	return rings
}
