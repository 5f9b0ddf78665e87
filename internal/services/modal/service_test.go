package modal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drift/internal/domain"
	"drift/internal/services/modal"
)

func threeStory() domain.Model {
	return domain.Model{
		Name:         "threestory",
		DampingRatio: 0.05,
		Stories: []domain.Story{
			{Mass: 0.1, Stiffness: 60, YieldStrength: 0.55, Hardening: 0.01},
			{Mass: 0.1, Stiffness: 50, YieldStrength: 0.45, Hardening: 0.01},
			{Mass: 0.1, Stiffness: 30, YieldStrength: 0.30, Hardening: 0.01},
		},
	}
}

func TestService_Analyze_FitsRayleighToFirstTwoModes(t *testing.T) {
	svc := modal.New(zap.NewNop().Sugar())

	res, err := svc.Analyze(context.Background(), threeStory())
	require.NoError(t, err)

	require.Len(t, res.Omega, 3)
	require.Len(t, res.Shapes, 3)
	assert.Less(t, res.Omega[0], res.Omega[1])
	assert.Less(t, res.Omega[1], res.Omega[2])
	assert.Greater(t, res.Period[0], res.Period[1])

	w1, w2 := res.Omega[0], res.Omega[1]
	zeta := 0.05
	assert.InDelta(t, 2*zeta*w1*w2/(w1+w2), res.AlphaM, 1e-12)
	assert.InDelta(t, 2*zeta/(w1+w2), res.BetaKComm, 1e-12)
}

func TestService_Analyze_CustomModePair(t *testing.T) {
	svc := modal.New(zap.NewNop().Sugar())

	m := threeStory()
	m.RayleighModes = [2]int{1, 3}

	res, err := svc.Analyze(context.Background(), m)
	require.NoError(t, err)

	w1, w3 := res.Omega[0], res.Omega[2]
	zeta := m.DampingRatio
	assert.InDelta(t, 2*zeta*w1*w3/(w1+w3), res.AlphaM, 1e-12)
	assert.InDelta(t, 2*zeta/(w1+w3), res.BetaKComm, 1e-12)
}

func TestService_Analyze_InvalidModel_Fails(t *testing.T) {
	svc := modal.New(zap.NewNop().Sugar())

	m := threeStory()
	m.Stories[0].Mass = -1

	_, err := svc.Analyze(context.Background(), m)
	require.Error(t, err)
}
