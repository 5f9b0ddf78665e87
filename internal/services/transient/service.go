package transient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"drift/internal/domain"
	"drift/internal/dynamics"
	"drift/internal/telemetry"
)

var tracer = otel.Tracer(telemetry.InstrumentationName)

// Service integrates models through earthquake records.
//
// A run proceeds in three stages:
//   - modal analysis on the initial stiffness, which fixes the Rayleigh
//     damping coefficients for the model's damping ratio
//   - Newmark integration of M·ü + C·u̇ + fr(u) = -M·ι·üg(t) with Newton
//     iteration on the unbalanced force at every step
//   - collection of the response into a history plus a manifest that pins
//     the model, the record checksum and the options used
type Service struct {
	modal  domain.ModalService
	motion domain.MotionService
	log    *zap.SugaredLogger
}

// New constructs a transient Service.
func New(modal domain.ModalService, motion domain.MotionService, log *zap.SugaredLogger) *Service {
	return &Service{
		modal:  modal,
		motion: motion,
		log:    log,
	}
}

// Run integrates m through gm and returns the full response.
func (s *Service) Run(ctx context.Context, m domain.Model, gm domain.GroundMotion, opts domain.TransientOptions) (*domain.RunResult, error) {
	ctx, span := tracer.Start(ctx, "transient.run",
		telemetry.WithModel(m.Name, m.Size()),
		telemetry.WithRecord(gm.Name))
	defer span.End()

	res, err := s.run(ctx, m, gm, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		telemetry.AttrRunID.String(res.Manifest.RunID),
		telemetry.AttrSteps.Int(res.History.Steps()),
	)
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func (s *Service) run(ctx context.Context, m domain.Model, gm domain.GroundMotion, opts domain.TransientOptions) (*domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := gm.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	duration := opts.Duration
	if duration == 0 {
		duration = gm.Duration()
	}
	steps := opts.Steps(duration)
	if steps == 0 {
		return nil, fmt.Errorf("record %q: nothing to integrate over %g s", gm.Name, duration)
	}

	modal, err := s.modal.Analyze(ctx, m)
	if err != nil {
		return nil, err
	}

	sys, err := dynamics.NewSystem(m)
	if err != nil {
		return nil, err
	}
	sys.SetRayleigh(modal.AlphaM, modal.BetaKComm)

	hist := domain.NewHistory(m.Size(), steps, opts.DT)

	start := time.Now()
	if err := s.integrate(ctx, sys, m, gm, hist, opts, steps); err != nil {
		return nil, err
	}

	sum, err := s.motion.Checksum(gm)
	if err != nil {
		return nil, err
	}

	res := &domain.RunResult{
		Manifest: domain.RunManifest{
			RunID:     uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Model:     m,
			Record: domain.RecordRef{
				Name:     gm.Name,
				DT:       gm.DT,
				Points:   gm.Points(),
				Unit:     gm.Unit,
				Checksum: sum,
			},
			Options:   opts,
			Periods:   modal.Period,
			AlphaM:    modal.AlphaM,
			BetaKComm: modal.BetaKComm,
			Peaks:     hist.Peaks(),
		},
		Modal:   modal,
		Motion:  gm,
		History: hist,
	}

	s.log.Infow("transient run finished",
		"run_id", res.Manifest.RunID,
		"model", m.Name,
		"record", gm.Name,
		"steps", steps,
		"elapsed", time.Since(start),
		"peak_disp", res.Manifest.Peaks.Disp,
		"peak_accel", res.Manifest.Peaks.Accel)
	return res, nil
}

func (s *Service) integrate(ctx context.Context, sys *dynamics.System, m domain.Model, gm domain.GroundMotion, hist *domain.History, opts domain.TransientOptions, steps int) error {
	_, span := tracer.Start(ctx, "transient.integrate",
		telemetry.WithModel(m.Name, m.Size()),
		telemetry.WithRecord(gm.Name))
	defer span.End()
	span.SetAttributes(telemetry.AttrSteps.Int(steps))

	nm := dynamics.NewNewmark(opts.Gamma, opts.Beta, opts.Tolerance, opts.MaxIterations)
	err := nm.Integrate(sys, dynamics.UniformExcitation(sys, gm), opts.DT, steps,
		func(step int, t float64, disp, vel, accel, force []float64) {
			hist.Record(step, disp, accel, force)
		})
	if err != nil {
		err = fmt.Errorf("model %q under %q: %w", m.Name, gm.Name, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// RunBatch integrates m through every named library record, at most parallel
// runs at a time. The first failure cancels the remaining runs.
func (s *Service) RunBatch(ctx context.Context, m domain.Model, records []string, opts domain.TransientOptions, parallel int) ([]*domain.RunResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to run")
	}
	if parallel < 1 {
		parallel = 1
	}

	ctx, span := tracer.Start(ctx, "transient.batch",
		telemetry.WithModel(m.Name, m.Size()))
	span.SetAttributes(
		telemetry.AttrBatchSize.Int(len(records)),
		telemetry.AttrParallelism.Int(parallel),
	)
	defer span.End()

	results := make([]*domain.RunResult, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, name := range records {
		g.Go(func() error {
			gm, err := s.motion.Load(name)
			if err != nil {
				return err
			}
			res, err := s.Run(ctx, m, gm, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	s.log.Infow("batch finished", "model", m.Name, "runs", len(results))
	return results, nil
}

// Compile-time assertion that Service implements domain.TransientService.
var _ domain.TransientService = (*Service)(nil)
