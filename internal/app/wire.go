package app

import (
	"path/filepath"

	"go.uber.org/zap"

	"drift/internal/archive"
	"drift/internal/domain"
	modalsvc "drift/internal/services/modal"
	motionsvc "drift/internal/services/motion"
	reportsvc "drift/internal/services/report"
	transientsvc "drift/internal/services/transient"
	"drift/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Records   domain.RecordStore
	Results   domain.ResultStore
	Archive   domain.ArchiveClient
	Motions   domain.MotionService
	Modal     domain.ModalService
	Transient domain.TransientService
	Report    domain.ReportService
	Log       *zap.SugaredLogger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	// File-based stores under the home directory
	records, err := store.NewRecordLibrary(filepath.Join(cfg.Home, "records"))
	if err != nil {
		return nil, err
	}
	results, err := store.NewResultDir(filepath.Join(cfg.Home, "runs"))
	if err != nil {
		return nil, err
	}

	ac := archive.NewClient(cfg.ArchiveURL)

	// High-level services
	motionSvc := motionsvc.New(records, ac, log)
	modalSvc := modalsvc.New(log)
	transientSvc := transientsvc.New(modalSvc, motionSvc, log)
	reportSvc := reportsvc.New(results, log)

	return &Wire{
		Records:   records,
		Results:   results,
		Archive:   ac,
		Motions:   motionSvc,
		Modal:     modalSvc,
		Transient: transientSvc,
		Report:    reportSvc,
		Log:       log,
	}, nil
}
