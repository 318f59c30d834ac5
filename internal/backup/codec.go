package backup

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Load reads and decodes a backup artifact. All failure modes (missing
// file, unreadable file, corrupt or incompatible payload) are reported as
// a *LoadError carrying the offending path.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var artifact Artifact
	if err := msgpack.NewDecoder(f).Decode(&artifact); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decoding msgpack payload: %w", err)}
	}
	if err := artifact.validate(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &artifact, nil
}

// Save encodes the artifact to path, creating or truncating the file.
func Save(path string, artifact *Artifact) error {
	if err := artifact.validate(); err != nil {
		return fmt.Errorf("refusing to save inconsistent artifact: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create backup file %q: %w", path, err)
	}

	if err := msgpack.NewEncoder(f).Encode(artifact); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode backup artifact to %q: %w", path, err)
	}
	return f.Close()
}
