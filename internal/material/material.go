package material

// Uniaxial is the contract between the integrator and a constitutive law.
//
// SetStrain proposes a trial strain; Stress and Tangent report the response at
// the trial state. Commit makes the trial state permanent once a step has
// converged, RevertToCommit abandons the trial state, and RevertToStart resets
// the virgin state.
type Uniaxial interface {
	SetStrain(eps float64)
	Stress() float64
	Tangent() float64
	InitialTangent() float64
	Commit()
	RevertToCommit()
	RevertToStart()
	Clone() Uniaxial
}
