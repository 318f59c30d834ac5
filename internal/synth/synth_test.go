package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelimee/sqmap/pkg/bloch"
)

func TestEquidistantPoints_OnUnitSphere(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		points := EquidistantPoints(n)
		require.Len(t, points, n)
		for _, p := range points {
			norm := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
			assert.InDelta(t, 1.0, norm, 1e-9)
		}
	}
}

func TestGenerate_ShapeMatchesOptions(t *testing.T) {
	artifact, err := Generate(Options{
		QubitNumber:          3,
		PointNumber:          25,
		Depolarizing:         0.1,
		Seed:                 42,
		BackendName:          "synthetic",
		BasisName:            "pauli",
		PostProcessingMethod: "ideal",
		Shots:                2048,
		ProcessorType:        "Falcon r4T",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, artifact.QubitNumber)
	require.Len(t, artifact.DensityMatrices, 3)
	for _, points := range artifact.DensityMatrices {
		require.Len(t, points, 25)
		for _, p := range points {
			assert.True(t, p.Rho.Valid(1e-9), "generated state must be physical")
		}
	}
}

func TestGenerate_ZeroNoiseReproducesIdealStates(t *testing.T) {
	artifact, err := Generate(Options{QubitNumber: 1, PointNumber: 16, Seed: 1})
	require.NoError(t, err)

	for _, p := range artifact.DensityMatrices[0] {
		ideal := bloch.FromBlochVector(p.Ideal[0], p.Ideal[1], p.Ideal[2])
		assert.InDelta(t, 1.0, bloch.Fidelity(ideal, p.Rho), 1e-9)
	}
}

func TestGenerate_DepolarizingLowersPurity(t *testing.T) {
	artifact, err := Generate(Options{QubitNumber: 1, PointNumber: 8, Depolarizing: 0.5, Seed: 7})
	require.NoError(t, err)

	for _, p := range artifact.DensityMatrices[0] {
		purity := bloch.Purity(p.Rho)
		assert.Less(t, purity, 1.0)
		assert.GreaterOrEqual(t, purity, 0.5-1e-9)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := Options{QubitNumber: 1, PointNumber: 8, Depolarizing: 0.05, Jitter: 0.02, Seed: 99}

	a, err := Generate(opts)
	require.NoError(t, err)
	b, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a.DensityMatrices, b.DensityMatrices)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	_, err := Generate(Options{QubitNumber: 0, PointNumber: 5})
	assert.Error(t, err)

	_, err = Generate(Options{QubitNumber: 1, PointNumber: 0})
	assert.Error(t, err)

	_, err = Generate(Options{QubitNumber: 1, PointNumber: 5, Depolarizing: 1.5})
	assert.Error(t, err)
}
