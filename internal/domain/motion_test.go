package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/domain"
)

func TestGroundMotion_Scaled_ConvertsG(t *testing.T) {
	g := domain.GroundMotion{
		Name:  "pulse",
		DT:    0.02,
		Unit:  domain.UnitG,
		Accel: []float64{0.1, -0.3, 0.2},
	}

	got := g.Scaled()
	require.Len(t, got, 3)
	assert.InDelta(t, 0.981, got[0], 1e-12)
	assert.InDelta(t, -2.943, got[1], 1e-12)
	assert.InDelta(t, -2.943, g.PGA(), 1e-12)

	raw := domain.GroundMotion{DT: 0.02, Unit: domain.UnitMS2, Accel: []float64{1.5, -2}}
	assert.Equal(t, []float64{1.5, -2}, raw.Scaled())
}

func TestGroundMotion_Validate_UnknownUnit(t *testing.T) {
	g := domain.GroundMotion{Name: "odd", DT: 0.01, Unit: "gal", Accel: []float64{1}}
	err := g.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown unit "gal"`)
}
