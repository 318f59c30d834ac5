package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/nelimee/sqmap/pkg/bloch"
)

func testArtifact(t *testing.T) *Artifact {
	t.Helper()
	m0 := bloch.FromBlochVector(0, 0, 1)
	m1 := bloch.FromBlochVector(1, 0, 0)
	return &Artifact{
		QubitNumber: 2,
		DensityMatrices: [][]Point{
			{{Ideal: [3]float64{0, 0, 1}, Rho: m0}},
			{{Ideal: [3]float64{1, 0, 0}, Rho: m1}},
		},
		BackendName:          "ibmq_test",
		BasisName:            "pauli",
		PostProcessingMethod: "mle",
		Shots:                1024,
		ProcessorType:        "Falcon r4T",
	}
}

func TestSelect_NoIndexProcessesEveryQubitInOrder(t *testing.T) {
	artifact := testArtifact(t)

	selections, err := artifact.Select(nil)
	require.NoError(t, err)
	require.Len(t, selections, 2)
	assert.Equal(t, 0, selections[0].Index)
	assert.Equal(t, 1, selections[1].Index)
	assert.Equal(t, [3]float64{0, 0, 1}, selections[0].Points[0].Ideal)
	assert.Equal(t, [3]float64{1, 0, 0}, selections[1].Points[0].Ideal)
}

func TestSelect_IndexProcessesOnlyThatQubit(t *testing.T) {
	artifact := testArtifact(t)

	index := 1
	selections, err := artifact.Select(&index)
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Equal(t, 1, selections[0].Index)
	assert.Equal(t, [3]float64{1, 0, 0}, selections[0].Points[0].Ideal)
}

func TestSelect_AbsentIndexFailsNamingRequestedAndAvailable(t *testing.T) {
	artifact := testArtifact(t)

	for _, requested := range []int{-1, 2, 17} {
		index := requested
		_, err := artifact.Select(&index)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrQubitNotFound)

		var qerr *QubitIndexError
		require.ErrorAs(t, err, &qerr)
		assert.Equal(t, requested, qerr.Requested)
		assert.Equal(t, []int{0, 1}, qerr.Available)
		assert.Contains(t, err.Error(), "available indices: 0, 1")
	}
}

func TestLoad_MissingFileIsLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.sqmap"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)

	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Contains(t, lerr.Path, "does-not-exist.sqmap")
}

func TestLoad_CorruptFileIsLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.sqmap")
	require.NoError(t, os.WriteFile(path, []byte("definitely not msgpack"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.NotErrorIs(t, err, ErrQubitNotFound)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.sqmap")
	orig := testArtifact(t)

	require.NoError(t, Save(path, orig))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig.QubitNumber, loaded.QubitNumber)
	assert.Equal(t, orig.BackendName, loaded.BackendName)
	assert.Equal(t, orig.BasisName, loaded.BasisName)
	assert.Equal(t, orig.PostProcessingMethod, loaded.PostProcessingMethod)
	assert.Equal(t, orig.Shots, loaded.Shots)
	assert.Equal(t, orig.ProcessorType, loaded.ProcessorType)
	require.Len(t, loaded.DensityMatrices, 2)
	assert.Equal(t, orig.DensityMatrices[0][0].Ideal, loaded.DensityMatrices[0][0].Ideal)
	assert.Equal(t, orig.DensityMatrices[1][0].Rho, loaded.DensityMatrices[1][0].Rho)
}

func TestLoad_InconsistentQubitNumberIsLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inconsistent.sqmap")
	artifact := testArtifact(t)
	artifact.QubitNumber = 5

	// Save refuses this shape, so encode it directly to exercise Load's
	// own validation.
	raw, err := msgpack.Marshal(artifact)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.Contains(t, err.Error(), "declares 5 qubits")
}

func TestSave_RefusesInconsistentArtifact(t *testing.T) {
	artifact := testArtifact(t)
	artifact.QubitNumber = 3

	err := Save(filepath.Join(t.TempDir(), "bad.sqmap"), artifact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inconsistent")
}
