package bloch

import (
	"math"
	"math/cmplx"
)

// Fidelity computes the state fidelity F(ρ, σ) between two single-qubit
// density matrices using the closed form for 2x2 matrices:
//
//	F = tr(ρσ) + 2·sqrt(det ρ · det σ)
//
// The result is clamped to [0, 1] to absorb small numeric drift from
// tomography reconstruction.
func Fidelity(rho, sigma Density) float64 {
	f := real(rho.Mul(sigma).Trace()) + 2*real(cmplx.Sqrt(rho.Det()*sigma.Det()))
	return clamp01(f)
}

// Infidelity is 1 - F(ρ, σ), the default flatmap coloring metric.
func Infidelity(rho, sigma Density) float64 {
	return 1 - Fidelity(rho, sigma)
}

// Purity computes tr(ρ²). Pure states have purity 1, the maximally mixed
// single-qubit state has purity 1/2.
func Purity(rho Density) float64 {
	return real(rho.Mul(rho).Trace())
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
