package dynamics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/domain"
	"drift/internal/dynamics"
)

func TestModes_TwoStoryClosedForm(t *testing.T) {
	// Unit masses with k = (2, 1): eigenvalues of [[3,-1],[-1,1]] are 2±√2.
	sys, err := dynamics.NewSystem(domain.Model{
		Name: "closed-form",
		Stories: []domain.Story{
			{Mass: 1, Stiffness: 2, Elastic: true},
			{Mass: 1, Stiffness: 1, Elastic: true},
		},
	})
	require.NoError(t, err)

	res, err := dynamics.Modes(sys)
	require.NoError(t, err)

	w1 := math.Sqrt(2 - math.Sqrt2)
	w2 := math.Sqrt(2 + math.Sqrt2)
	require.Len(t, res.Omega, 2)
	assert.InDelta(t, w1, res.Omega[0], 1e-9)
	assert.InDelta(t, w2, res.Omega[1], 1e-9)
	assert.InDelta(t, 2*math.Pi/w1, res.Period[0], 1e-9)
	assert.InDelta(t, w2/(2*math.Pi), res.Frequency[1], 1e-9)
}

func TestModes_UniformThreeStory(t *testing.T) {
	// Uniform chain: λ_i = 4·sin²((2i−1)π/14), the classic result for a
	// fixed-free shear building.
	stories := make([]domain.Story, 3)
	for i := range stories {
		stories[i] = domain.Story{Mass: 1, Stiffness: 1, Elastic: true}
	}
	sys, err := dynamics.NewSystem(domain.Model{Name: "uniform", Stories: stories})
	require.NoError(t, err)

	res, err := dynamics.Modes(sys)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		want := 2 * math.Sin(float64(2*i+1)*math.Pi/14)
		assert.InDelta(t, want, res.Omega[i], 1e-9, "mode %d", i+1)
	}
}

func TestModes_ShapesAreMassOrthonormal(t *testing.T) {
	sys, err := dynamics.NewSystem(domain.Model{
		Name: "threestory",
		Stories: []domain.Story{
			{Mass: 0.1, Stiffness: 60, Elastic: true},
			{Mass: 0.1, Stiffness: 50, Elastic: true},
			{Mass: 0.1, Stiffness: 30, Elastic: true},
		},
	})
	require.NoError(t, err)

	res, err := dynamics.Modes(sys)
	require.NoError(t, err)

	masses := []float64{0.1, 0.1, 0.1}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			dot := 0.0
			for i := 0; i < 3; i++ {
				dot += res.Shapes[a][i] * masses[i] * res.Shapes[b][i]
			}
			want := 0.0
			if a == b {
				want = 1
			}
			assert.InDelta(t, want, dot, 1e-9, "modes %d·%d", a+1, b+1)
		}
	}

	// Roof entries are oriented positive and frequencies ascend.
	for k := 0; k < 3; k++ {
		assert.Greater(t, res.Shapes[k][2], 0.0)
	}
	assert.Less(t, res.Omega[0], res.Omega[1])
	assert.Less(t, res.Omega[1], res.Omega[2])
}

func TestRayleighCoefficients(t *testing.T) {
	a0, a1 := dynamics.RayleighCoefficients(2, 4, 0.05)
	assert.InDelta(t, 2*0.05*2*4/6, a0, 1e-12)
	assert.InDelta(t, 2*0.05/6, a1, 1e-12)

	// The fit reproduces the target ratio at both anchor frequencies.
	for _, w := range []float64{2, 4} {
		zeta := a0/(2*w) + a1*w/2
		assert.InDelta(t, 0.05, zeta, 1e-12)
	}

	a0, a1 = dynamics.RayleighCoefficients(0, 0, 0.05)
	assert.Zero(t, a0)
	assert.Zero(t, a1)
}
