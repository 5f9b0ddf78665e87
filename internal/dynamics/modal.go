package dynamics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"drift/internal/domain"
)

var errEigenFailed = errors.New("eigen decomposition did not converge")

// Modes solves K·φ = ω²·M·φ on the initial stiffness. With a diagonal mass
// matrix the generalized problem reduces to the symmetric standard problem
// (M^-1/2·K·M^-1/2)·ψ = ω²·ψ with φ = M^-1/2·ψ, so the returned shapes are
// mass-orthonormal. Modes come out ascending by frequency; each shape is
// oriented so its roof entry is positive.
func Modes(s *System) (domain.ModalResult, error) {
	n := s.Size()

	var k0 mat.SymDense
	s.InitialStiffness(&k0)

	invSqrtM := make([]float64, n)
	for i, m := range s.Masses() {
		invSqrtM[i] = 1 / math.Sqrt(m)
	}

	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a.SetSym(i, j, k0.At(i, j)*invSqrtM[i]*invSqrtM[j])
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return domain.ModalResult{}, errEigenFailed
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	res := domain.ModalResult{
		Omega:     make([]float64, n),
		Period:    make([]float64, n),
		Frequency: make([]float64, n),
		Shapes:    make([][]float64, n),
	}
	for k := 0; k < n; k++ {
		lambda := vals[k]
		if lambda < 0 {
			lambda = 0 // numerical noise on a semi-definite pencil
		}
		w := math.Sqrt(lambda)
		res.Omega[k] = w
		res.Frequency[k] = w / (2 * math.Pi)
		if w > 0 {
			res.Period[k] = 2 * math.Pi / w
		}

		shape := make([]float64, n)
		for i := 0; i < n; i++ {
			shape[i] = vecs.At(i, k) * invSqrtM[i]
		}
		if shape[n-1] < 0 {
			for i := range shape {
				shape[i] = -shape[i]
			}
		}
		res.Shapes[k] = shape
	}
	return res, nil
}

// RayleighCoefficients fits C = a0·M + a1·K to reach the damping ratio zeta
// at the two circular frequencies wi and wj.
func RayleighCoefficients(wi, wj, zeta float64) (a0, a1 float64) {
	sum := wi + wj
	if sum <= 0 {
		return 0, 0
	}
	a0 = 2 * zeta * wi * wj / sum
	a1 = 2 * zeta / sum
	return a0, a1
}
