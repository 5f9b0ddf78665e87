package material

// Bilinear is a kinematically hardening elastoplastic law: elastic stiffness E
// up to the yield strength Fy, post-yield stiffness b·E, and elastic
// unloading. The stress is an elastic predictor clipped to the two bounding
// lines b·E·ε ± (1−b)·Fy, which keeps the hysteresis loops of the classic
// steel model.
type Bilinear struct {
	e  float64 // elastic stiffness
	fy float64 // yield strength
	b  float64 // hardening ratio, 0 ≤ b < 1

	// committed state
	cStrain float64
	cStress float64

	// trial state
	tStrain  float64
	tStress  float64
	tTangent float64
}

// NewBilinear returns a virgin bilinear material.
func NewBilinear(e, fy, b float64) *Bilinear {
	m := &Bilinear{e: e, fy: fy, b: b}
	m.tTangent = e
	return m
}

func (m *Bilinear) SetStrain(eps float64) {
	m.tStrain = eps

	de := eps - m.cStrain
	if de == 0 {
		m.tStress = m.cStress
		m.tTangent = m.e
		return
	}

	trial := m.cStress + m.e*de
	hard := m.b * m.e * eps
	span := (1 - m.b) * m.fy

	switch {
	case trial > hard+span:
		m.tStress = hard + span
		m.tTangent = m.b * m.e
	case trial < hard-span:
		m.tStress = hard - span
		m.tTangent = m.b * m.e
	default:
		m.tStress = trial
		m.tTangent = m.e
	}
}

func (m *Bilinear) Stress() float64 { return m.tStress }

func (m *Bilinear) Tangent() float64 { return m.tTangent }

func (m *Bilinear) InitialTangent() float64 { return m.e }

func (m *Bilinear) Commit() {
	m.cStrain = m.tStrain
	m.cStress = m.tStress
}

func (m *Bilinear) RevertToCommit() {
	m.tStrain = m.cStrain
	m.tStress = m.cStress
	m.tTangent = m.e
}

func (m *Bilinear) RevertToStart() {
	m.cStrain, m.cStress = 0, 0
	m.tStrain, m.tStress = 0, 0
	m.tTangent = m.e
}

func (m *Bilinear) Clone() Uniaxial {
	c := *m
	return &c
}

var _ Uniaxial = (*Bilinear)(nil)
