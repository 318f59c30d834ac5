package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nelimee/sqmap/internal/backup"
)

// Projection maps geographic coordinates (degrees) onto the plane.
type Projection interface {
	Name() string
	Project(lat, lon float64) (x, y float64)
}

// Equirectangular is the identity projection: x = lon, y = lat.
type Equirectangular struct{}

func (Equirectangular) Name() string { return "equirectangular" }

func (Equirectangular) Project(lat, lon float64) (x, y float64) {
	return lon, lat
}

// Sinusoidal is an equal-area pseudocylindrical projection:
// x = lon·cos(lat), y = lat.
type Sinusoidal struct{}

func (Sinusoidal) Name() string { return "sinusoidal" }

func (Sinusoidal) Project(lat, lon float64) (x, y float64) {
	return lon * math.Cos(lat*math.Pi/180), lat
}

// ProjectionByName resolves a projection from its CLI name.
func ProjectionByName(name string) (Projection, error) {
	switch name {
	case "equirectangular", "":
		return Equirectangular{}, nil
	case "sinusoidal":
		return Sinusoidal{}, nil
	default:
		return nil, fmt.Errorf("unknown projection %q (known: equirectangular, sinusoidal)", name)
	}
}

// ProjectedOptions configures the map-projected view.
type ProjectedOptions struct {
	Title      string
	Metric     MetricFunc
	Projection Projection
}

// Projected draws the metric over a map projection of the Bloch sphere:
// a fine grid of interpolated values rendered as colored cells, the ideal
// points as black dots and the sphere outline as a graticule boundary.
func (r *Renderer) Projected(points []backup.Point, opts ProjectedOptions, path string) error {
	s, err := newPointSeries(points, opts.Metric)
	if err != nil {
		return err
	}
	proj := opts.Projection
	if proj == nil {
		proj = Equirectangular{}
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "longitude (°)"
	p.Y.Label.Text = "latitude (°)"

	// Interpolate in geographic coordinates with seam replication at
	// lon = ±180, then color each fine-grid cell through the projection.
	lonExt, latExt, vals := replicateSeam(360, s.lon, s.lat, s.z)
	zExt := vals[0]

	g := interpolate(lonExt, latExt, zExt,
		linspace(-180, 180, r.cfg.GridN),
		linspace(-90, 90, r.cfg.GridN/2))

	pal := r.heatPalette(s, nil, nil)
	colors := pal.Colors()
	min, max := colorRange(s, nil, nil)

	cells := make(plotter.XYs, 0, r.cfg.GridN*r.cfg.GridN/2)
	cellColors := make([]color.Color, 0, cap(cells))
	cols, rows := g.Dims()
	for ri := 0; ri < rows; ri++ {
		for ci := 0; ci < cols; ci++ {
			x, y := proj.Project(g.Y(ri), g.X(ci))
			cells = append(cells, plotter.XY{X: x, Y: y})
			frac := (g.Z(ci, ri) - min) / (max - min)
			idx := int(frac * float64(len(colors)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(colors) {
				idx = len(colors) - 1
			}
			cellColors = append(cellColors, colors[idx])
		}
	}
	field, err := plotter.NewScatter(cells)
	if err != nil {
		return err
	}
	field.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  cellColors[i],
			Radius: vg.Points(1.2),
			Shape:  draw.BoxGlyph{},
		}
	}
	p.Add(field)

	if outline := projectionOutline(proj); outline != nil {
		p.Add(outline)
	}

	ideals := make(plotter.XYs, len(s.lat))
	for i := range s.lat {
		x, y := proj.Project(s.lat[i], s.lon[i])
		ideals[i] = plotter.XY{X: x, Y: y}
	}
	dots, err := plotter.NewScatter(ideals)
	if err != nil {
		return err
	}
	dots.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(1),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(dots)

	r.log.Debug().
		Str("path", path).
		Str("projection", proj.Name()).
		Int("points", len(points)).
		Msg("Writing projected figure")
	return r.savePlot(p, path)
}

// projectionOutline traces the projected boundary of the sphere.
func projectionOutline(proj Projection) *plotter.Line {
	var pts plotter.XYs
	for lat := -90.0; lat <= 90; lat++ {
		x, y := proj.Project(lat, 180)
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	for lat := 90.0; lat >= -90; lat-- {
		x, y := proj.Project(lat, -180)
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	line.Color = color.Gray{Y: 100}
	line.Width = vg.Points(0.8)
	return line
}
