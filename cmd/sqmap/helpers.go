package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nelimee/sqmap/internal/backup"
	"github.com/nelimee/sqmap/internal/config"
	"github.com/nelimee/sqmap/internal/render"
	"github.com/nelimee/sqmap/pkg/logger"
)

// app bundles the pieces every subcommand needs.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	renderer *render.Renderer
}

// newApp loads configuration and wires the logger and renderer. Each
// invocation gets a run id so figures produced together can be correlated
// in the logs.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	renderer := render.New(render.Config{
		WidthCm:  cfg.PlotWidthCm,
		HeightCm: cfg.PlotHeightCm,
		GridN:    cfg.GridN,
	}, log)

	return &app{cfg: cfg, log: log, renderer: renderer}, nil
}

// selectQubits loads the backup file and picks the qubits to process.
// index == -1 selects every qubit.
func (a *app) selectQubits(path string, index int) (*backup.Artifact, []backup.Selection, error) {
	if index < -1 {
		return nil, nil, fmt.Errorf("invalid qubit index %d: use a non-negative index, or -1 for all qubits", index)
	}
	artifact, err := backup.Load(path)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info().
		Str("backup_file", path).
		Str("backend", artifact.BackendName).
		Str("basis", artifact.BasisName).
		Str("method", artifact.PostProcessingMethod).
		Int("qubits", artifact.QubitNumber).
		Msg("Backup artifact loaded")

	var idx *int
	if index >= 0 {
		idx = &index
	}
	selections, err := artifact.Select(idx)
	if err != nil {
		return nil, nil, err
	}
	return artifact, selections, nil
}

// qubitTitle reproduces the figure title of the original plotting scripts.
func qubitTitle(artifact *backup.Artifact, qubitIndex int) string {
	return fmt.Sprintf("Qubit n°%d of backend '%s' using '%s' tomography basis and '%s' reconstruction method.",
		qubitIndex, artifact.BackendName, artifact.BasisName, artifact.PostProcessingMethod)
}

// figurePath resolves where one figure goes. out is the -o flag value:
// empty means the configured output directory, an existing directory (or
// trailing separator) means "directory", anything else is the exact file
// path for single-figure renders. multi asks for per-qubit naming even
// when an exact path is given.
func (a *app) figurePath(out, backupFile, view string, qubitIndex int, multi bool) string {
	base := strings.TrimSuffix(filepath.Base(backupFile), filepath.Ext(backupFile))
	name := fmt.Sprintf("%s_%s_q%d.png", base, view, qubitIndex)
	if qubitIndex < 0 {
		name = fmt.Sprintf("%s_%s.png", base, view)
	}

	switch {
	case out == "":
		return filepath.Join(a.cfg.OutputDir, name)
	case isDir(out):
		return filepath.Join(out, name)
	case multi:
		// An exact file path cannot hold several figures: derive
		// per-qubit siblings from it.
		ext := filepath.Ext(out)
		return fmt.Sprintf("%s_q%d%s", strings.TrimSuffix(out, ext), qubitIndex, ext)
	default:
		return out
	}
}

func isDir(path string) bool {
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
