package dynamics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"drift/internal/domain"
	"drift/internal/dynamics"
)

func twoStoryElastic(t *testing.T) *dynamics.System {
	t.Helper()
	sys, err := dynamics.NewSystem(domain.Model{
		Name:         "pair",
		DampingRatio: 0,
		Stories: []domain.Story{
			{Mass: 2, Stiffness: 30, Elastic: true},
			{Mass: 1, Stiffness: 10, Elastic: true},
		},
	})
	require.NoError(t, err)
	return sys
}

func TestNewSystem_RejectsInvalidModel(t *testing.T) {
	_, err := dynamics.NewSystem(domain.Model{Name: "empty"})
	require.Error(t, err)

	_, err = dynamics.NewSystem(domain.Model{
		Name:    "bad",
		Stories: []domain.Story{{Mass: -1, Stiffness: 0}},
	})
	require.Error(t, err)
}

func TestSystem_TangentStiffnessPattern(t *testing.T) {
	sys := twoStoryElastic(t)

	var k mat.SymDense
	sys.TangentStiffness(&k)

	assert.InDelta(t, 40, k.At(0, 0), 1e-12) // k1 + k2
	assert.InDelta(t, -10, k.At(0, 1), 1e-12)
	assert.InDelta(t, -10, k.At(1, 0), 1e-12)
	assert.InDelta(t, 10, k.At(1, 1), 1e-12)
}

func TestSystem_ResistingForceFromDrifts(t *testing.T) {
	sys := twoStoryElastic(t)

	// Floor displacements 0.1 and 0.3 give drifts 0.1 and 0.2.
	sys.SetTrial([]float64{0.1, 0.3})

	f := make([]float64, 2)
	sys.StoryForces(f)
	assert.InDelta(t, 3, f[0], 1e-12)
	assert.InDelta(t, 2, f[1], 1e-12)

	sys.ResistingForce(f)
	assert.InDelta(t, 1, f[0], 1e-12) // s1 − s2
	assert.InDelta(t, 2, f[1], 1e-12) // s2
}

func TestSystem_RayleighDamping(t *testing.T) {
	sys := twoStoryElastic(t)
	sys.SetRayleigh(0.5, 0.01)

	c := sys.Damping()
	assert.InDelta(t, 0.5*2+0.01*40, c.At(0, 0), 1e-12)
	assert.InDelta(t, 0.01*-10, c.At(0, 1), 1e-12)
	assert.InDelta(t, 0.5*1+0.01*10, c.At(1, 1), 1e-12)
}

func TestSystem_CommitRefreshesDampingTangent(t *testing.T) {
	sys, err := dynamics.NewSystem(domain.Model{
		Name: "epp",
		Stories: []domain.Story{
			{Mass: 1, Stiffness: 100, YieldStrength: 1, Hardening: 0},
		},
	})
	require.NoError(t, err)
	sys.SetRayleigh(0, 0.02)

	assert.InDelta(t, 2.0, sys.Damping().At(0, 0), 1e-12)

	// Push past yield; the committed tangent drops to zero and the
	// stiffness-proportional damping follows.
	sys.SetTrial([]float64{1})
	sys.Commit()
	assert.InDelta(t, 0.0, sys.Damping().At(0, 0), 1e-12)
}
