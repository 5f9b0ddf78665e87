package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"drift/internal/domain"
	"drift/internal/material"
)

// System is an assembled N-story shear building: lumped masses on a chain of
// uniaxial story springs over a fixed base. Story i (0-based) connects floor
// i−1 to floor i; floor −1 is the ground.
type System struct {
	n       int
	mass    []float64
	springs []material.Uniaxial

	alphaM    float64
	betaKComm float64
	damp      *mat.SymDense // rebuilt at every commit while betaKComm ≠ 0
}

// NewSystem builds the system from a validated model.
func NewSystem(m domain.Model) (*System, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("building system: %w", err)
	}
	n := m.Size()
	s := &System{
		n:       n,
		mass:    make([]float64, n),
		springs: make([]material.Uniaxial, n),
		damp:    mat.NewSymDense(n, nil),
	}
	for i, st := range m.Stories {
		s.mass[i] = st.Mass
		if st.Elastic {
			s.springs[i] = material.NewElastic(st.Stiffness)
		} else {
			s.springs[i] = material.NewBilinear(st.Stiffness, st.YieldStrength, st.Hardening)
		}
	}
	return s, nil
}

// Size returns the number of degrees of freedom.
func (s *System) Size() int { return s.n }

// Masses returns the diagonal of the mass matrix.
func (s *System) Masses() []float64 { return s.mass }

// SetRayleigh fixes the damping rule C = a0·M + a1·K_comm and assembles the
// damping matrix from the current committed stiffness.
func (s *System) SetRayleigh(a0, a1 float64) {
	s.alphaM = a0
	s.betaKComm = a1
	s.rebuildDamping()
}

func (s *System) rebuildDamping() {
	var kc mat.SymDense
	s.assemble(&kc, func(sp material.Uniaxial) float64 { return sp.Tangent() })
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			c := s.betaKComm * kc.At(i, j)
			if i == j {
				c += s.alphaM * s.mass[i]
			}
			s.damp.SetSym(i, j, c)
		}
	}
}

// SetTrial imposes the trial floor displacements on every story spring.
func (s *System) SetTrial(u []float64) {
	prev := 0.0
	for i, sp := range s.springs {
		sp.SetStrain(u[i] - prev)
		prev = u[i]
	}
}

// ResistingForce writes the restoring force vector at the trial state.
func (s *System) ResistingForce(dst []float64) {
	for i := range dst {
		f := s.springs[i].Stress()
		if i+1 < s.n {
			f -= s.springs[i+1].Stress()
		}
		dst[i] = f
	}
}

// StoryForces writes each story spring force at the trial state.
func (s *System) StoryForces(dst []float64) {
	for i, sp := range s.springs {
		dst[i] = sp.Stress()
	}
}

// assemble fills dst with the tridiagonal stiffness pattern using the story
// stiffness reported by get.
func (s *System) assemble(dst *mat.SymDense, get func(material.Uniaxial) float64) {
	dst.Reset()
	dst.ReuseAsSym(s.n)
	for i := 0; i < s.n; i++ {
		k := get(s.springs[i])
		d := k
		if i+1 < s.n {
			next := get(s.springs[i+1])
			d += next
			dst.SetSym(i, i+1, -next)
		}
		dst.SetSym(i, i, d)
	}
}

// TangentStiffness writes the stiffness at the trial state.
func (s *System) TangentStiffness(dst *mat.SymDense) {
	s.assemble(dst, func(sp material.Uniaxial) float64 { return sp.Tangent() })
}

// InitialStiffness writes the virgin elastic stiffness.
func (s *System) InitialStiffness(dst *mat.SymDense) {
	s.assemble(dst, func(sp material.Uniaxial) float64 { return sp.InitialTangent() })
}

// Damping returns the current damping matrix. The caller must not mutate it.
func (s *System) Damping() *mat.SymDense { return s.damp }

// Commit makes the trial state permanent and refreshes the committed-tangent
// part of the Rayleigh damping.
func (s *System) Commit() {
	for _, sp := range s.springs {
		sp.Commit()
	}
	if s.betaKComm != 0 {
		s.rebuildDamping()
	}
}

// RevertToCommit abandons the trial state.
func (s *System) RevertToCommit() {
	for _, sp := range s.springs {
		sp.RevertToCommit()
	}
}

// Reset returns every spring to its virgin state and rebuilds damping.
func (s *System) Reset() {
	for _, sp := range s.springs {
		sp.RevertToStart()
	}
	s.rebuildDamping()
}
