package domain

import "context"

// RecordStore keeps the local ground-motion library.
type RecordStore interface {
	List() ([]RecordInfo, error)
	Load(name string) (GroundMotion, error)
	Save(gm GroundMotion) error
}

// ResultStore persists run outputs under a per-run directory.
type ResultStore interface {
	CreateRun(runID string) (dir string, err error)
	WriteManifest(dir string, mf RunManifest) (path string, err error)
	WriteHistory(dir string, h *History) (path string, err error)
}

// ArchiveClient fetches ground-motion records from a remote archive. The
// archive speaks the same JSON record documents the local library stores.
type ArchiveClient interface {
	List(ctx context.Context) ([]RecordInfo, error)
	Fetch(ctx context.Context, name string) (GroundMotion, error)
}

// MotionService manages the record library and remote imports.
type MotionService interface {
	// Import parses a record file and stores it in the library. dt and
	// unitName apply to plain-text records; AT2 headers win over both.
	Import(path string, dt float64, unitName string) (GroundMotion, error)
	// Fetch downloads name from the archive and stores it in the library.
	Fetch(ctx context.Context, name string) (GroundMotion, error)
	Load(name string) (GroundMotion, error)
	List() ([]RecordInfo, error)
	// Checksum fingerprints a record for run manifests.
	Checksum(gm GroundMotion) (string, error)
}

// ModalService computes natural frequencies, periods, mode shapes and the
// Rayleigh coefficients for the model's damping ratio.
type ModalService interface {
	Analyze(ctx context.Context, m Model) (ModalResult, error)
}

// TransientService runs nonlinear time-history analyses.
type TransientService interface {
	Run(ctx context.Context, m Model, gm GroundMotion, opts TransientOptions) (*RunResult, error)
	// RunBatch analyzes one model under every named library record,
	// at most parallel runs at a time.
	RunBatch(ctx context.Context, m Model, records []string, opts TransientOptions, parallel int) ([]*RunResult, error)
}

// ReportService writes a run to disk: manifest, histories and figures.
type ReportService interface {
	Write(res *RunResult) (RunArtifacts, error)
}
