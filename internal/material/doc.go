// Package material implements the uniaxial constitutive laws driving story
// springs.
//
// A material is a small state machine: the integrator proposes trial strains,
// reads back stress and tangent stiffness, and commits the state only once the
// step has converged. Force units are kN and strain here is the inter-story
// drift in m, so "stress" is the story shear and "tangent" a stiffness in kN/m.
package material
