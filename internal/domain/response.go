package domain

import (
	"math"

	"github.com/samber/lo"
)

// History holds the response of every story on a fixed output time grid.
// Sample i of each series corresponds to Time[i] = i·DT; index 0 is the
// at-rest state before the excitation acts.
type History struct {
	DT    float64
	Time  []float64
	Disp  [][]float64 // relative displacement per story, m
	Accel [][]float64 // relative acceleration per story, m/s²
	Force [][]float64 // story spring force, kN
}

// NewHistory allocates a history for n stories and steps integration steps
// (series length steps+1, including the initial state).
func NewHistory(n, steps int, dt float64) *History {
	h := &History{
		DT:    dt,
		Time:  make([]float64, steps+1),
		Disp:  make([][]float64, n),
		Accel: make([][]float64, n),
		Force: make([][]float64, n),
	}
	for i := range h.Time {
		h.Time[i] = float64(i) * dt
	}
	for s := 0; s < n; s++ {
		h.Disp[s] = make([]float64, steps+1)
		h.Accel[s] = make([]float64, steps+1)
		h.Force[s] = make([]float64, steps+1)
	}
	return h
}

// Stories returns the number of recorded stories.
func (h *History) Stories() int { return len(h.Disp) }

// Steps returns the number of integration steps recorded (samples minus one).
func (h *History) Steps() int { return len(h.Time) - 1 }

// Duration returns the time of the last sample.
func (h *History) Duration() float64 {
	if len(h.Time) == 0 {
		return 0
	}
	return h.Time[len(h.Time)-1]
}

// Record stores the state after step i (i=0 is the initial state).
func (h *History) Record(i int, disp, accel, force []float64) {
	for s := range h.Disp {
		h.Disp[s][i] = disp[s]
		h.Accel[s][i] = accel[s]
		h.Force[s][i] = force[s]
	}
}

// Peaks holds the signed extreme of each response series per story.
type Peaks struct {
	Disp  []float64 `json:"displacement"`
	Accel []float64 `json:"acceleration"`
	Force []float64 `json:"force"`
}

// Peaks extracts the signed peak of every series.
func (h *History) Peaks() Peaks {
	return Peaks{
		Disp:  lo.Map(h.Disp, func(xs []float64, _ int) float64 { return SignedPeak(xs) }),
		Accel: lo.Map(h.Accel, func(xs []float64, _ int) float64 { return SignedPeak(xs) }),
		Force: lo.Map(h.Force, func(xs []float64, _ int) float64 { return SignedPeak(xs) }),
	}
}

// SignedPeak returns the sample of largest magnitude with its sign kept,
// or 0 for an empty series.
func SignedPeak(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return lo.MaxBy(xs, func(a, b float64) bool {
		return math.Abs(a) > math.Abs(b)
	})
}
