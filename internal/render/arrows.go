package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arrow is one displacement from its tail to its head in data coordinates.
type arrow struct {
	x0, y0 float64
	x1, y1 float64
}

// arrowField draws a set of arrows. gonum/plot has no quiver plotter, so
// this implements plot.Plotter directly: each arrow is a shaft and two
// head strokes drawn on the canvas.
type arrowField struct {
	arrows []arrow
	style  draw.LineStyle
	// headLen is the arrow-head stroke length on the canvas.
	headLen vg.Length
}

func newArrowField(arrows []arrow) *arrowField {
	return &arrowField{
		arrows: arrows,
		style: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.6),
		},
		headLen: vg.Points(2.5),
	}
}

// Plot implements plot.Plotter.
func (f *arrowField) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, a := range f.arrows {
		x0, y0 := trX(a.x0), trY(a.y0)
		x1, y1 := trX(a.x1), trY(a.y1)
		if !c.Contains(vg.Point{X: x0, Y: y0}) && !c.Contains(vg.Point{X: x1, Y: y1}) {
			continue
		}
		c.StrokeLine2(f.style, x0, y0, x1, y1)

		// Head: two strokes at 150 degrees on both sides of the shaft
		// direction. Degenerate arrows get no head.
		dx, dy := float64(x1-x0), float64(y1-y0)
		if dx == 0 && dy == 0 {
			continue
		}
		angle := math.Atan2(dy, dx)
		for _, offset := range []float64{5 * math.Pi / 6, -5 * math.Pi / 6} {
			hx := x1 + f.headLen*vg.Length(math.Cos(angle+offset))
			hy := y1 + f.headLen*vg.Length(math.Sin(angle+offset))
			c.StrokeLine2(f.style, x1, y1, hx, hy)
		}
	}
}

// DataRange implements plot.DataRanger so arrows influence axis ranges.
func (f *arrowField) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, a := range f.arrows {
		xmin = math.Min(xmin, math.Min(a.x0, a.x1))
		xmax = math.Max(xmax, math.Max(a.x0, a.x1))
		ymin = math.Min(ymin, math.Min(a.y0, a.y1))
		ymax = math.Max(ymax, math.Max(a.y0, a.y1))
	}
	return xmin, xmax, ymin, ymax
}
