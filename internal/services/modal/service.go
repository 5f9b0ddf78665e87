package modal

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"drift/internal/domain"
	"drift/internal/dynamics"
	"drift/internal/telemetry"
)

var tracer = otel.Tracer(telemetry.InstrumentationName)

// Service runs eigen analyses on structural models.
type Service struct {
	log *zap.SugaredLogger
}

// New constructs a modal Service.
func New(log *zap.SugaredLogger) *Service {
	return &Service{log: log}
}

// Analyze solves the model's eigenproblem on its initial stiffness and fits
// the Rayleigh coefficients to the configured mode pair.
func (s *Service) Analyze(ctx context.Context, m domain.Model) (domain.ModalResult, error) {
	_, span := tracer.Start(ctx, "modal.analyze",
		telemetry.WithModel(m.Name, m.Size()))
	defer span.End()

	res, err := s.analyze(m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.ModalResult{}, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func (s *Service) analyze(m domain.Model) (domain.ModalResult, error) {
	if err := m.Validate(); err != nil {
		return domain.ModalResult{}, err
	}

	sys, err := dynamics.NewSystem(m)
	if err != nil {
		return domain.ModalResult{}, err
	}
	res, err := dynamics.Modes(sys)
	if err != nil {
		return domain.ModalResult{}, fmt.Errorf("model %q: %w", m.Name, err)
	}

	i, j := m.Modes()
	res.AlphaM, res.BetaKComm = dynamics.RayleighCoefficients(
		res.Omega[i-1], res.Omega[j-1], m.DampingRatio)

	s.log.Infow("modal analysis",
		"model", m.Name,
		"periods", res.Period,
		"alpha_m", res.AlphaM,
		"beta_k_comm", res.BetaKComm)
	return res, nil
}

// Compile-time assertion that Service implements domain.ModalService.
var _ domain.ModalService = (*Service)(nil)
