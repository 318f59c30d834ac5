package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForProcessor_KnownTypes(t *testing.T) {
	tests := []struct {
		processorType string
		qubits        int
		maxX, maxY    int
	}{
		{"Canary r1.2", 1, 0, 0},
		{"Falcon r4T", 5, 2, 2},
		{"Falcon r4L", 5, 4, 0},
		{"Falcon r5.11L", 5, 4, 0},
		{"Falcon r5.11H", 7, 2, 2},
		{"Falcon r4P", 16, 6, 4},
		{"Falcon r4", 27, 10, 4},
		{"Falcon r5.11", 27, 10, 4},
		{"Hummingbird r2", 65, 10, 8},
		{"Eagle r1", 127, 14, 12},
	}

	for _, tt := range tests {
		t.Run(tt.processorType, func(t *testing.T) {
			p, err := ForProcessor(tt.processorType)
			require.NoError(t, err)
			assert.Equal(t, tt.qubits, p.QubitNumber)
			assert.Len(t, p.Positions, tt.qubits)
			assert.Equal(t, tt.maxX, p.MaxX())
			assert.Equal(t, tt.maxY, p.MaxY())
		})
	}
}

func TestForProcessor_UnknownTypeListsKnownOnes(t *testing.T) {
	_, err := ForProcessor("Condor r1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProcessor)
	assert.Contains(t, err.Error(), "Condor r1")
	assert.Contains(t, err.Error(), "Eagle r1")
}

func TestPlacement_PositionsAreUnique(t *testing.T) {
	for _, processorType := range Known() {
		p, err := ForProcessor(processorType)
		require.NoError(t, err)

		seen := map[[2]int]bool{}
		for _, pos := range p.Positions {
			assert.Falsef(t, seen[pos], "%s: duplicate position %v", processorType, pos)
			seen[pos] = true
		}
	}
}

func TestPlacement_Occupied(t *testing.T) {
	p, err := ForProcessor("Falcon r4T")
	require.NoError(t, err)

	assert.True(t, p.Occupied(1, 2))
	assert.False(t, p.Occupied(0, 2))
	assert.False(t, p.Occupied(2, 1))
}
