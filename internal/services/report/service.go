package report

import (
	"path/filepath"

	"go.uber.org/zap"

	"drift/internal/domain"
	"drift/internal/figure"
)

// Service writes run results to the result store as a per-run directory of
// manifest, histories and figures.
type Service struct {
	results domain.ResultStore
	log     *zap.SugaredLogger
}

// New constructs a report Service over the given result store.
func New(results domain.ResultStore, log *zap.SugaredLogger) *Service {
	return &Service{
		results: results,
		log:     log,
	}
}

// Write persists res and returns the paths it produced.
func (s *Service) Write(res *domain.RunResult) (domain.RunArtifacts, error) {
	dir, err := s.results.CreateRun(res.Manifest.RunID)
	if err != nil {
		return domain.RunArtifacts{}, err
	}

	manifest, err := s.results.WriteManifest(dir, res.Manifest)
	if err != nil {
		return domain.RunArtifacts{}, err
	}
	history, err := s.results.WriteHistory(dir, res.History)
	if err != nil {
		return domain.RunArtifacts{}, err
	}

	accel := filepath.Join(dir, "accelerations.png")
	if err := figure.Accelerations(res, accel); err != nil {
		return domain.RunArtifacts{}, err
	}
	disp := filepath.Join(dir, "displacements.png")
	if err := figure.Displacements(res, disp); err != nil {
		return domain.RunArtifacts{}, err
	}

	art := domain.RunArtifacts{
		Dir:      dir,
		Manifest: manifest,
		History:  history,
		Figures:  []string{accel, disp},
	}
	s.log.Infow("report written", "run_id", res.Manifest.RunID, "dir", dir)
	return art, nil
}

// Compile-time assertion that Service implements domain.ReportService.
var _ domain.ReportService = (*Service)(nil)
