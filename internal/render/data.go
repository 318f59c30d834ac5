package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/pkg/bloch"
)

// MetricByName resolves a metric from its CLI name. "fidelity" and
// "infidelity" compare against the ideally prepared state; "purity" only
// looks at the reconstruction.
func MetricByName(name string) (MetricFunc, error) {
	switch name {
	case "infidelity", "":
		return bloch.Infidelity, nil
	case "fidelity":
		return bloch.Fidelity, nil
	case "purity":
		return func(_, obtained bloch.Density) float64 { return bloch.Purity(obtained) }, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (known: fidelity, infidelity, purity)", name)
	}
}

// pointSeries is the per-point derived data every view draws from: ideal
// positions in spherical and geographic coordinates, wrapped displacements
// towards the reconstructed states, and the metric value per point.
type pointSeries struct {
	theta, phi   []float64 // ideal inclination and azimuth
	dTheta, dPhi []float64 // displacement to the reconstruction, wrapped to [-pi, pi]
	lat, lon     []float64 // ideal geographic coordinates, degrees
	dLat, dLon   []float64 // geographic displacement, longitude wrapped to [-180, 180]
	z            []float64 // metric values

	zMean, zMin, zMax float64
}

func newPointSeries(points []backup.Point, metric MetricFunc) (*pointSeries, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no tomography points to render")
	}
	if metric == nil {
		metric = bloch.Infidelity
	}

	n := len(points)
	s := &pointSeries{
		theta: make([]float64, n), phi: make([]float64, n),
		dTheta: make([]float64, n), dPhi: make([]float64, n),
		lat: make([]float64, n), lon: make([]float64, n),
		dLat: make([]float64, n), dLon: make([]float64, n),
		z: make([]float64, n),
	}

	for i, p := range points {
		ideal, err := bloch.CartesianToDensity(p.Ideal[0], p.Ideal[1], p.Ideal[2])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		idealSph := bloch.CartesianToSpherical(p.Ideal[0], p.Ideal[1], p.Ideal[2])
		obtainedSph := p.Rho.ToSpherical()

		s.theta[i] = idealSph.Theta
		s.phi[i] = idealSph.Phi
		s.dTheta[i] = wrapAngle(obtainedSph.Theta - idealSph.Theta)
		s.dPhi[i] = wrapAngle(obtainedSph.Phi - idealSph.Phi)

		idealLat, idealLon := bloch.SphericalToGeographic(idealSph.Theta, idealSph.Phi)
		obtainedLat, obtainedLon := bloch.SphericalToGeographic(obtainedSph.Theta, obtainedSph.Phi)
		s.lat[i] = idealLat
		s.lon[i] = idealLon
		s.dLat[i] = obtainedLat - idealLat
		s.dLon[i] = wrapDegrees(obtainedLon - idealLon)

		s.z[i] = metric(ideal, p.Rho)
	}

	s.zMean = stat.Mean(s.z, nil)
	s.zMin = floats.Min(s.z)
	s.zMax = floats.Max(s.z)
	return s, nil
}
