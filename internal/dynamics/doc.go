// Package dynamics holds the numerics of the shear-building equation of
// motion
//
//	M·ü + C·u̇ + Fr(u) = −M·ι·üg(t)
//
// formulated in coordinates relative to the ground, so displacements,
// velocities and accelerations reported by the integrator are relative
// responses.
//
// System assembles the diagonal mass matrix, the story springs and the
// Rayleigh damping matrix. Modes solves the generalized eigenproblem on the
// initial stiffness. Newmark advances the system with Newton-Raphson
// iteration on the unbalanced force.
package dynamics
