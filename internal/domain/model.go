package domain

import (
	"fmt"

	"go.uber.org/multierr"
)

// Story is one level of a shear building: a lumped floor mass riding on a
// uniaxial story spring. Units follow the kN-m-s system (mass in tons).
type Story struct {
	Mass          float64 `json:"mass"`                     // ton (kN·s²/m)
	Stiffness     float64 `json:"stiffness"`                // kN/m, initial
	YieldStrength float64 `json:"yield_strength,omitempty"` // kN; unused when elastic
	Hardening     float64 `json:"hardening,omitempty"`      // post-yield stiffness ratio
	Elastic       bool    `json:"elastic,omitempty"`        // linear spring, no yielding
}

// Model describes an N-story nonlinear shear building with a fixed base.
// Story 1 sits on the ground; drifts are measured between adjacent floors.
type Model struct {
	Name          string  `json:"name"`
	DampingRatio  float64 `json:"damping_ratio"`
	RayleighModes [2]int  `json:"rayleigh_modes,omitempty"` // 1-based mode pair; zero means (1,2)
	Stories       []Story `json:"stories"`
}

// Size returns the number of dynamic degrees of freedom (one per floor).
func (m Model) Size() int { return len(m.Stories) }

// Modes returns the 1-based mode pair used to fit Rayleigh damping,
// applying the default when the model does not set one.
func (m Model) Modes() (int, int) {
	i, j := m.RayleighModes[0], m.RayleighModes[1]
	if i == 0 && j == 0 {
		if m.Size() == 1 {
			return 1, 1
		}
		return 1, 2
	}
	return i, j
}

// Validate reports every violation in the model, not just the first.
func (m Model) Validate() error {
	var err error
	if len(m.Stories) == 0 {
		return fmt.Errorf("model %q: no stories", m.Name)
	}
	if m.DampingRatio < 0 || m.DampingRatio >= 1 {
		err = multierr.Append(err, fmt.Errorf("damping ratio %g outside [0,1)", m.DampingRatio))
	}
	for n, st := range m.Stories {
		if st.Mass <= 0 {
			err = multierr.Append(err, fmt.Errorf("story %d: mass %g must be positive", n+1, st.Mass))
		}
		if st.Stiffness <= 0 {
			err = multierr.Append(err, fmt.Errorf("story %d: stiffness %g must be positive", n+1, st.Stiffness))
		}
		if st.Elastic {
			continue
		}
		if st.YieldStrength <= 0 {
			err = multierr.Append(err, fmt.Errorf("story %d: yield strength %g must be positive", n+1, st.YieldStrength))
		}
		if st.Hardening < 0 || st.Hardening >= 1 {
			err = multierr.Append(err, fmt.Errorf("story %d: hardening ratio %g outside [0,1)", n+1, st.Hardening))
		}
	}
	i, j := m.Modes()
	if i < 1 || i > m.Size() || j < 1 || j > m.Size() {
		err = multierr.Append(err, fmt.Errorf("rayleigh modes (%d,%d) outside 1..%d", i, j, m.Size()))
	}
	return err
}
