package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/internal/placement"
)

// ChipOptions configures the whole-chip view.
type ChipOptions struct {
	Title  string
	Metric MetricFunc
}

// Chip lays out one flatmap per qubit at the qubit's physical position on
// the chip, per the placement registered for the artifact's processor
// type. Grid cells with no qubit stay empty.
func (r *Renderer) Chip(artifact *backup.Artifact, opts ChipOptions, path string) error {
	p, err := placement.ForProcessor(artifact.ProcessorType)
	if err != nil {
		return err
	}
	if p.QubitNumber != len(artifact.DensityMatrices) {
		return fmt.Errorf("processor type %q has %d qubits but the backup contains %d",
			artifact.ProcessorType, p.QubitNumber, len(artifact.DensityMatrices))
	}

	rows, cols := p.MaxY()+1, p.MaxX()+1
	plots := make([][]*plot.Plot, rows)
	for y := range plots {
		plots[y] = make([]*plot.Plot, cols)
	}
	for qubit, pos := range p.Positions {
		s, err := newPointSeries(artifact.DensityMatrices[qubit], opts.Metric)
		if err != nil {
			return fmt.Errorf("qubit %d: %w", qubit, err)
		}
		sub, err := r.flatmapPlot(s, FlatmapOptions{Title: fmt.Sprintf("Q%d", qubit)})
		if err != nil {
			return fmt.Errorf("qubit %d: %w", qubit, err)
		}
		sub.X.Label.Text = ""
		sub.Y.Label.Text = ""
		plots[pos[1]][pos[0]] = sub
	}

	var titleBand vg.Length
	if opts.Title != "" {
		titleBand = vg.Centimeter
	}
	img := vgimg.New(
		vg.Length(cols)*vg.Length(r.cfg.WidthCm/3)*vg.Centimeter,
		vg.Length(rows)*vg.Length(r.cfg.HeightCm/3)*vg.Centimeter+titleBand,
	)
	dc := draw.New(img)
	if titleBand > 0 {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(14)),
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		}
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(4)}, opts.Title)
		dc = draw.Crop(dc, 0, 0, 0, -titleBand)
	}
	tiles := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Points(4),
		PadY: vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, dc)
	for y := range plots {
		for x := range plots[y] {
			if plots[y][x] != nil {
				// Row 0 of the placement grid is the top of the chip.
				plots[y][x].Draw(canvases[y][x])
			}
		}
	}

	r.log.Debug().
		Str("path", path).
		Str("processor_type", artifact.ProcessorType).
		Int("qubits", p.QubitNumber).
		Msg("Writing chip figure")
	return writePNG(img, path)
}
