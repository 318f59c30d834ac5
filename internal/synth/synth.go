// Package synth generates synthetic tomography artifacts for tests and
// demos: approximately equidistant points on the Bloch sphere paired with
// noisy reconstructions of the states they prepare.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/pkg/bloch"
)

// Options configures artifact generation.
type Options struct {
	QubitNumber int
	// PointNumber is the number of ideal states prepared per qubit.
	PointNumber int
	// Depolarizing is the depolarizing-channel strength applied to every
	// reconstructed state, in [0, 1]. 0 reproduces the ideal states.
	Depolarizing float64
	// Jitter adds a small random rotation of the reconstructed Bloch
	// vector, standard deviation in radians.
	Jitter float64
	// Seed makes generation reproducible.
	Seed int64

	BackendName          string
	BasisName            string
	PostProcessingMethod string
	Shots                int
	ProcessorType        string
}

// EquidistantPoints returns n approximately equidistant points on the unit
// sphere using the Fibonacci lattice.
func EquidistantPoints(n int) [][3]float64 {
	points := make([][3]float64, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		z := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - z*z)
		phi := golden * float64(i)
		points[i] = [3]float64{r * math.Cos(phi), r * math.Sin(phi), z}
	}
	return points
}

// Generate builds an artifact per the options.
func Generate(opts Options) (*backup.Artifact, error) {
	if opts.QubitNumber <= 0 {
		return nil, fmt.Errorf("qubit number must be positive, got %d", opts.QubitNumber)
	}
	if opts.PointNumber <= 0 {
		return nil, fmt.Errorf("point number must be positive, got %d", opts.PointNumber)
	}
	if opts.Depolarizing < 0 || opts.Depolarizing > 1 {
		return nil, fmt.Errorf("depolarizing strength must be in [0, 1], got %g", opts.Depolarizing)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	ideal := EquidistantPoints(opts.PointNumber)

	matrices := make([][]backup.Point, opts.QubitNumber)
	for q := range matrices {
		points := make([]backup.Point, len(ideal))
		for i, p := range ideal {
			points[i] = backup.Point{
				Ideal: p,
				Rho:   noisyState(p, opts, rng),
			}
		}
		matrices[q] = points
	}

	return &backup.Artifact{
		QubitNumber:          opts.QubitNumber,
		DensityMatrices:      matrices,
		BackendName:          opts.BackendName,
		BasisName:            opts.BasisName,
		PostProcessingMethod: opts.PostProcessingMethod,
		Shots:                opts.Shots,
		ProcessorType:        opts.ProcessorType,
	}, nil
}

// noisyState shrinks the Bloch vector with a depolarizing channel and
// jitters its direction, then rebuilds the density matrix.
func noisyState(p [3]float64, opts Options, rng *rand.Rand) bloch.Density {
	s := bloch.CartesianToSpherical(p[0], p[1], p[2])
	s.R *= 1 - opts.Depolarizing
	if opts.Jitter > 0 {
		s.Theta += rng.NormFloat64() * opts.Jitter
		s.Phi += rng.NormFloat64() * opts.Jitter
		s.Theta = math.Abs(math.Mod(s.Theta, 2*math.Pi))
		if s.Theta > math.Pi {
			s.Theta = 2*math.Pi - s.Theta
		}
	}
	x, y, z := s.Cartesian()
	return bloch.FromBlochVector(x, y, z)
}
