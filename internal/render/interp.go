package render

import (
	"math"
)

// grid is a regular grid of interpolated values implementing
// plotter.GridXYZ. xs and ys are the cell-center coordinates, zs is
// row-major with rows indexed by y.
type grid struct {
	xs, ys []float64
	zs     []float64
}

func (g *grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *grid) X(c int) float64    { return g.xs[c] }
func (g *grid) Y(r int) float64    { return g.ys[r] }
func (g *grid) Z(c, r int) float64 { return g.zs[r*len(g.xs)+c] }

func linspace(min, max float64, n int) []float64 {
	if n == 1 {
		return []float64{(min + max) / 2}
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	return out
}

// interpolate resamples scattered (x, y, z) samples onto a regular grid
// with inverse-distance weighting (modified Shepard). The sample sets are
// sparse tomography points, so a global weighting is accurate enough and
// avoids a triangulation dependency.
func interpolate(x, y, z []float64, gx, gy []float64) *grid {
	const power = 2.0
	zs := make([]float64, len(gx)*len(gy))
	for r, yv := range gy {
		for c, xv := range gx {
			var num, den float64
			exact := math.NaN()
			for i := range x {
				dx, dy := xv-x[i], yv-y[i]
				d2 := dx*dx + dy*dy
				if d2 < 1e-12 {
					exact = z[i]
					break
				}
				w := 1 / math.Pow(d2, power/2)
				num += w * z[i]
				den += w
			}
			if !math.IsNaN(exact) {
				zs[r*len(gx)+c] = exact
			} else {
				zs[r*len(gx)+c] = num / den
			}
		}
	}
	return &grid{xs: gx, ys: gy, zs: zs}
}

// wrapAngle maps an angle difference into [-pi, pi].
func wrapAngle(a float64) float64 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// wrapDegrees maps a longitude difference into [-180, 180].
func wrapDegrees(d float64) float64 {
	for d < -180 {
		d += 360
	}
	for d > 180 {
		d -= 360
	}
	return d
}

// replicateSeam duplicates samples sitting on the azimuthal seam (x close
// to -period/2 or +period/2) on the opposite side, so interpolation stays
// continuous across the wrap-around. Returns the extended x, y and value
// slices. Extra value slices are extended in lockstep.
func replicateSeam(period float64, x, y []float64, values ...[]float64) ([]float64, []float64, [][]float64) {
	half := period / 2
	outX := append([]float64(nil), x...)
	outY := append([]float64(nil), y...)
	outV := make([][]float64, len(values))
	for i, v := range values {
		outV[i] = append([]float64(nil), v...)
	}
	for i := range x {
		var shift float64
		switch {
		case math.Abs(x[i]-(-half)) < 1e-6*period:
			shift = period
		case math.Abs(x[i]-half) < 1e-6*period:
			shift = -period
		default:
			continue
		}
		outX = append(outX, x[i]+shift)
		outY = append(outY, y[i])
		for j, v := range values {
			outV[j] = append(outV[j], v[i])
		}
	}
	return outX, outY, outV
}
