package bloch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFidelity_SelfIsOne(t *testing.T) {
	states := []Density{
		FromBlochVector(0, 0, 1),
		FromBlochVector(1, 0, 0),
		FromBlochVector(0.2, -0.3, 0.4),
		FromBlochVector(0, 0, 0),
	}
	for _, s := range states {
		assert.InDelta(t, 1.0, Fidelity(s, s), 1e-9)
	}
}

func TestFidelity_OrthogonalStatesIsZero(t *testing.T) {
	zero := FromBlochVector(0, 0, 1)
	one := FromBlochVector(0, 0, -1)
	assert.InDelta(t, 0.0, Fidelity(zero, one), 1e-9)
	assert.InDelta(t, 1.0, Infidelity(zero, one), 1e-9)
}

func TestFidelity_PureAgainstMixed(t *testing.T) {
	pure := FromBlochVector(0, 0, 1)
	mixed := FromBlochVector(0, 0, 0)
	// <0|(I/2)|0> = 1/2
	assert.InDelta(t, 0.5, Fidelity(pure, mixed), 1e-9)
}

func TestFidelity_Symmetric(t *testing.T) {
	a := FromBlochVector(0.1, 0.5, -0.3)
	b := FromBlochVector(-0.4, 0.2, 0.6)
	assert.InDelta(t, Fidelity(a, b), Fidelity(b, a), 1e-9)
}

func TestPurity(t *testing.T) {
	tests := []struct {
		name string
		d    Density
		want float64
	}{
		{"Pure |0>", FromBlochVector(0, 0, 1), 1.0},
		{"Pure |+>", FromBlochVector(1, 0, 0), 1.0},
		{"Maximally mixed", FromBlochVector(0, 0, 0), 0.5},
		{"Partially mixed", FromBlochVector(0, 0, 0.5), 0.625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Purity(tt.d), 1e-9)
		})
	}
}

func TestDensity_MsgpackRoundTrip(t *testing.T) {
	orig := FromBlochVector(0.3, -0.2, 0.5)

	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode(&orig))

	var decoded Density
	require.NoError(t, msgpack.NewDecoder(&buf).Decode(&decoded))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, real(orig[i][j]), real(decoded[i][j]), 1e-12)
			assert.InDelta(t, imag(orig[i][j]), imag(decoded[i][j]), 1e-12)
		}
	}
}

func TestDensity_MsgpackRejectsWrongLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode([]float64{1, 2, 3}))

	var d Density
	err := msgpack.NewDecoder(&buf).Decode(&d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 components")
}

func TestValid(t *testing.T) {
	assert.True(t, FromBlochVector(0, 0.6, 0.8).Valid(1e-9))

	tracey := Density{{1, 0}, {0, 1}} // trace 2
	assert.False(t, tracey.Valid(1e-9))

	nonHermitian := Density{{0.5, 0.3}, {0.1, 0.5}}
	assert.False(t, nonHermitian.Valid(1e-9))

	outside := Density{{1.5, 0}, {0, -0.5}} // trace 1 but negative eigenvalue
	assert.False(t, outside.Valid(1e-9))
}
