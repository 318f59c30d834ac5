// Package bloch provides the single-qubit state geometry used by all
// renderers: density matrices, Bloch-sphere coordinate transforms and
// reconstruction-quality metrics.
package bloch

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/vmihailenco/msgpack/v5"
)

// Density is a 2x2 complex density matrix describing a single-qubit state.
type Density [2][2]complex128

// Pauli basis. Every single-qubit density matrix decomposes as
// (I + x·X + y·Y + z·Z) / 2 with (x, y, z) inside the unit ball.
var (
	I = Density{{1, 0}, {0, 1}}
	X = Density{{0, 1}, {1, 0}}
	Y = Density{{0, complex(0, -1)}, {complex(0, 1), 0}}
	Z = Density{{1, 0}, {0, -1}}
)

// Trace returns tr(ρ).
func (d Density) Trace() complex128 {
	return d[0][0] + d[1][1]
}

// Det returns det(ρ).
func (d Density) Det() complex128 {
	return d[0][0]*d[1][1] - d[0][1]*d[1][0]
}

// Mul returns the matrix product d·other.
func (d Density) Mul(other Density) Density {
	var out Density
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = d[i][0]*other[0][j] + d[i][1]*other[1][j]
		}
	}
	return out
}

// Valid reports whether d is a physical density matrix within tol:
// Hermitian, unit trace and positive semi-definite.
func (d Density) Valid(tol float64) bool {
	if cmplx.Abs(d[0][1]-cmplx.Conj(d[1][0])) > tol {
		return false
	}
	if math.Abs(imag(d[0][0])) > tol || math.Abs(imag(d[1][1])) > tol {
		return false
	}
	if cmplx.Abs(d.Trace()-1) > tol {
		return false
	}
	// PSD for a Hermitian 2x2 with unit trace reduces to det >= 0 and
	// non-negative diagonal.
	return real(d.Det()) >= -tol && real(d[0][0]) >= -tol && real(d[1][1]) >= -tol
}

// msgpack wire format: flat array of 8 float64, row-major (re, im) pairs.
// Complex numbers have no native msgpack representation.

var (
	_ msgpack.CustomEncoder = (*Density)(nil)
	_ msgpack.CustomDecoder = (*Density)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (d *Density) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(8); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if err := enc.EncodeFloat64(real(d[i][j])); err != nil {
				return err
			}
			if err := enc.EncodeFloat64(imag(d[i][j])); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Density) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 8 {
		return fmt.Errorf("density matrix: expected 8 components, got %d", n)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			re, err := dec.DecodeFloat64()
			if err != nil {
				return err
			}
			im, err := dec.DecodeFloat64()
			if err != nil {
				return err
			}
			d[i][j] = complex(re, im)
		}
	}
	return nil
}
