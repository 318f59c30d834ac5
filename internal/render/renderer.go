// Package render draws tomography results with gonum/plot: flattened
// Bloch-sphere heatmaps with displacement arrows, polar summaries,
// map-projected views, whole-chip grids and shot-count precision curves.
package render

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nelimee/sqmap/pkg/bloch"
)

// MetricFunc scores a reconstructed state against the ideally prepared
// one. Lower-is-better or higher-is-better is up to the metric; the
// renderers only color by it.
type MetricFunc func(ideal, obtained bloch.Density) float64

// Config holds figure geometry.
type Config struct {
	// WidthCm and HeightCm are the figure dimensions in centimeters.
	WidthCm  float64
	HeightCm float64
	// GridN is the resolution of the interpolation grid backing heatmaps.
	GridN int
}

// DefaultConfig mirrors the figure defaults of the plotting scripts.
func DefaultConfig() Config {
	return Config{WidthCm: 24, HeightCm: 14, GridN: 200}
}

// Renderer draws figures to PNG files.
type Renderer struct {
	cfg Config
	log zerolog.Logger
}

// New creates a renderer. Zero config fields fall back to DefaultConfig.
func New(cfg Config, log zerolog.Logger) *Renderer {
	def := DefaultConfig()
	if cfg.WidthCm <= 0 {
		cfg.WidthCm = def.WidthCm
	}
	if cfg.HeightCm <= 0 {
		cfg.HeightCm = def.HeightCm
	}
	if cfg.GridN <= 1 {
		cfg.GridN = def.GridN
	}
	return &Renderer{
		cfg: cfg,
		log: log.With().Str("component", "render").Logger(),
	}
}

func (r *Renderer) width() vg.Length  { return vg.Length(r.cfg.WidthCm) * vg.Centimeter }
func (r *Renderer) height() vg.Length { return vg.Length(r.cfg.HeightCm) * vg.Centimeter }

// writePNG rasterizes the canvas to path.
func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create figure file %q: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write figure to %q: %w", path, err)
	}
	return f.Close()
}

// savePlot renders a single plot to a PNG file at the renderer's size.
func (r *Renderer) savePlot(p *plot.Plot, path string) error {
	img := vgimg.New(r.width(), r.height())
	p.Draw(draw.New(img))
	return writePNG(img, path)
}

// saveWithColorBar renders the main plot with a vertical colorbar plot on
// its right edge, sharing one canvas.
func (r *Renderer) saveWithColorBar(main, bar *plot.Plot, path string) error {
	img := vgimg.New(r.width(), r.height())
	dc := draw.New(img)

	barWidth := vg.Length(0.12) * r.width()
	main.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, r.width()-barWidth, 0, 0, 0))
	return writePNG(img, path)
}
