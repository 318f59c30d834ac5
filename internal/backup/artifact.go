// Package backup reads and writes the tomography backup artifacts produced
// after post-processing a state tomography experiment, and selects the
// per-qubit reconstruction data the renderers consume.
package backup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nelimee/sqmap/pkg/bloch"
)

// Error kinds callers branch on with errors.Is.
var (
	// ErrLoad marks a backup file that cannot be read or decoded.
	ErrLoad = errors.New("cannot load backup artifact")

	// ErrQubitNotFound marks a requested qubit index absent from the artifact.
	ErrQubitNotFound = errors.New("qubit index not found")
)

// Point pairs the ideally prepared Bloch-sphere point (cartesian
// coordinates) with the density matrix reconstructed from measurements.
type Point struct {
	Ideal [3]float64    `msgpack:"ideal"`
	Rho   bloch.Density `msgpack:"density_matrix"`
}

// Artifact is the serialized container saved after computing density
// matrices. DensityMatrices holds, for each qubit index, the list of
// (ideal point, reconstructed matrix) pairs of the tomography run.
type Artifact struct {
	QubitNumber          int       `msgpack:"qubit_number"`
	DensityMatrices      [][]Point `msgpack:"density_matrices"`
	BackendName          string    `msgpack:"backend_name"`
	BasisName            string    `msgpack:"basis_name"`
	PostProcessingMethod string    `msgpack:"post_processing_method"`
	Shots                int       `msgpack:"shots"`
	ProcessorType        string    `msgpack:"processor_type"`
}

// LoadError reports a backup file that could not be loaded. It matches
// ErrLoad under errors.Is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load backup artifact %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is matches ErrLoad so callers need not know the concrete type.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// QubitIndexError reports a requested qubit index that is not present in
// the artifact. It matches ErrQubitNotFound under errors.Is.
type QubitIndexError struct {
	Requested int
	Available []int
}

func (e *QubitIndexError) Error() string {
	avail := make([]string, len(e.Available))
	for i, idx := range e.Available {
		avail[i] = fmt.Sprint(idx)
	}
	return fmt.Sprintf("qubit index %d not found in backup (available indices: %s)",
		e.Requested, strings.Join(avail, ", "))
}

// Is matches ErrQubitNotFound so callers need not know the concrete type.
func (e *QubitIndexError) Is(target error) bool { return target == ErrQubitNotFound }

// Selection is one qubit's share of an artifact.
type Selection struct {
	Index  int
	Points []Point
}

// Indices returns the qubit indices present in the artifact, ascending.
func (a *Artifact) Indices() []int {
	indices := make([]int, len(a.DensityMatrices))
	for i := range a.DensityMatrices {
		indices[i] = i
	}
	return indices
}

// Select returns the per-qubit data to process. A nil index selects every
// qubit in ascending index order; a non-nil index selects exactly that
// qubit or fails with a *QubitIndexError.
func (a *Artifact) Select(index *int) ([]Selection, error) {
	if index == nil {
		out := make([]Selection, 0, len(a.DensityMatrices))
		for i, points := range a.DensityMatrices {
			out = append(out, Selection{Index: i, Points: points})
		}
		return out, nil
	}
	i := *index
	if i < 0 || i >= len(a.DensityMatrices) {
		available := a.Indices()
		sort.Ints(available)
		return nil, &QubitIndexError{Requested: i, Available: available}
	}
	return []Selection{{Index: i, Points: a.DensityMatrices[i]}}, nil
}

// validate checks the mapping shape invariant: the recorded qubit number
// must agree with the per-qubit entries.
func (a *Artifact) validate() error {
	if a.QubitNumber != len(a.DensityMatrices) {
		return fmt.Errorf("artifact declares %d qubits but contains %d entries",
			a.QubitNumber, len(a.DensityMatrices))
	}
	return nil
}
