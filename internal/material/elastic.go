package material

// Elastic is a linear spring; it never yields and carries no history.
type Elastic struct {
	e       float64
	cStrain float64
	tStrain float64
}

// NewElastic returns a linear material with stiffness e.
func NewElastic(e float64) *Elastic { return &Elastic{e: e} }

func (m *Elastic) SetStrain(eps float64) { m.tStrain = eps }

func (m *Elastic) Stress() float64 { return m.e * m.tStrain }

func (m *Elastic) Tangent() float64 { return m.e }

func (m *Elastic) InitialTangent() float64 { return m.e }

func (m *Elastic) Commit() { m.cStrain = m.tStrain }

func (m *Elastic) RevertToCommit() { m.tStrain = m.cStrain }

func (m *Elastic) RevertToStart() { m.cStrain, m.tStrain = 0, 0 }

func (m *Elastic) Clone() Uniaxial {
	c := *m
	return &c
}

var _ Uniaxial = (*Elastic)(nil)
