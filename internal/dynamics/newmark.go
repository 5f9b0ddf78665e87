package dynamics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"drift/internal/domain"
)

// LoadFunc fills dst with the external force vector at time t.
type LoadFunc func(t float64, dst []float64)

// StepFunc observes the committed state after every step. Step 0 is the
// initial state. The slices are reused between calls; copy what you keep.
type StepFunc func(step int, t float64, disp, vel, accel, force []float64)

// ConvergenceError reports a step whose Newton iteration never brought the
// unbalanced force under the tolerance.
type ConvergenceError struct {
	Step       int
	Time       float64
	Unbalance  float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence at step %d (t=%.3f s): unbalance %.3e after %d iterations",
		e.Step, e.Time, e.Unbalance, e.Iterations)
}

// UniformExcitation builds the effective earthquake load −M·ι·üg(t) for a
// rigid-base excitation by gm.
func UniformExcitation(s *System, gm domain.GroundMotion) LoadFunc {
	return func(t float64, dst []float64) {
		ag := gm.At(t)
		for i, m := range s.mass {
			dst[i] = -m * ag
		}
	}
}

// Newmark advances the equation of motion with the Newmark-beta scheme,
// iterating each step with Newton-Raphson until the 2-norm of the unbalanced
// force falls under Tolerance.
type Newmark struct {
	Gamma         float64
	Beta          float64
	Tolerance     float64
	MaxIterations int
}

// NewNewmark returns an integrator. Gamma 1/2 with beta 1/4 is the
// unconditionally stable average-acceleration scheme.
func NewNewmark(gamma, beta, tol float64, maxIter int) *Newmark {
	return &Newmark{Gamma: gamma, Beta: beta, Tolerance: tol, MaxIterations: maxIter}
}

// Integrate runs steps increments of dt from the committed state, which must
// be at rest. onStep, when non-nil, sees the initial state and every
// converged step. On a failed step the system is reverted to its last
// committed state and a *ConvergenceError is returned.
func (nm *Newmark) Integrate(sys *System, load LoadFunc, dt float64, steps int, onStep StepFunc) error {
	n := sys.Size()

	u := make([]float64, n)
	v := make([]float64, n)
	a := make([]float64, n)
	ut := make([]float64, n)
	vt := make([]float64, n)
	at := make([]float64, n)

	p := make([]float64, n)
	fr := make([]float64, n)
	resid := make([]float64, n)
	force := make([]float64, n)

	kt := mat.NewSymDense(n, nil)
	keff := mat.NewSymDense(n, nil)
	var cv mat.VecDense
	du := mat.NewVecDense(n, nil)
	rv := mat.NewVecDense(n, resid)
	vtv := mat.NewVecDense(n, vt)

	// Initial acceleration from equilibrium at t=0 with u=v=0.
	load(0, p)
	sys.SetTrial(u)
	sys.ResistingForce(fr)
	for i := range a {
		a[i] = (p[i] - fr[i]) / sys.mass[i]
	}
	if onStep != nil {
		sys.StoryForces(force)
		onStep(0, 0, u, v, a, force)
	}

	c0 := 1 / (nm.Beta * dt * dt)
	c1 := nm.Gamma / (nm.Beta * dt)
	c2 := 1 / (nm.Beta * dt)
	c3 := 1/(2*nm.Beta) - 1
	c4 := nm.Gamma/nm.Beta - 1
	c5 := dt * (nm.Gamma/(2*nm.Beta) - 1)

	damp := sys.Damping()

	for step := 1; step <= steps; step++ {
		t := float64(step) * dt
		load(t, p)
		copy(ut, u)

		var unbalance float64
		converged := false

		for iter := 0; ; iter++ {
			for i := 0; i < n; i++ {
				d := ut[i] - u[i]
				at[i] = c0*d - c2*v[i] - c3*a[i]
				vt[i] = c1*d - c4*v[i] - c5*a[i]
			}

			sys.SetTrial(ut)
			sys.ResistingForce(fr)
			cv.MulVec(damp, vtv)
			for i := 0; i < n; i++ {
				resid[i] = p[i] - fr[i] - sys.mass[i]*at[i] - cv.AtVec(i)
			}
			unbalance = floats.Norm(resid, 2)
			if unbalance <= nm.Tolerance {
				converged = true
				break
			}
			if iter >= nm.MaxIterations {
				break
			}

			sys.TangentStiffness(kt)
			for i := 0; i < n; i++ {
				for j := i; j < n; j++ {
					k := kt.At(i, j) + c1*damp.At(i, j)
					if i == j {
						k += c0 * sys.mass[i]
					}
					keff.SetSym(i, j, k)
				}
			}
			if err := solveSym(keff, rv, du); err != nil {
				sys.RevertToCommit()
				return fmt.Errorf("step %d (t=%.3f s): %w", step, t, err)
			}
			for i := 0; i < n; i++ {
				ut[i] += du.AtVec(i)
			}
		}

		if !converged {
			sys.RevertToCommit()
			return &ConvergenceError{Step: step, Time: t, Unbalance: unbalance, Iterations: nm.MaxIterations}
		}

		sys.Commit()
		copy(u, ut)
		copy(v, vt)
		copy(a, at)
		if onStep != nil {
			sys.StoryForces(force)
			onStep(step, t, u, v, a, force)
		}
	}
	return nil
}

// solveSym solves k·x = b, preferring Cholesky and falling back to LU when
// the effective stiffness is not positive definite.
func solveSym(k *mat.SymDense, b *mat.VecDense, x *mat.VecDense) error {
	var chol mat.Cholesky
	if chol.Factorize(k) {
		if err := chol.SolveVecTo(x, b); err == nil {
			return nil
		}
	}
	var lu mat.LU
	lu.Factorize(k)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return fmt.Errorf("effective stiffness is singular: %w", err)
	}
	return nil
}
