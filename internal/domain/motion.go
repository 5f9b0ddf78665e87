package domain

import (
	"fmt"

	"drift/internal/util/unit"
)

// Acceleration units a record may be expressed in.
const (
	UnitG   = "g"
	UnitMS2 = "m/s2"
)

// GroundMotion is a digitized ground acceleration history sampled at a fixed
// time step. Accel holds the raw samples in Unit; use Scaled or At for values
// in m/s².
type GroundMotion struct {
	Name  string    `json:"name"`
	DT    float64   `json:"dt"`   // s
	Unit  string    `json:"unit"` // UnitG or UnitMS2
	Accel []float64 `json:"accel"`
}

// Points returns the number of samples.
func (g GroundMotion) Points() int { return len(g.Accel) }

// Duration returns the time spanned by the record.
func (g GroundMotion) Duration() float64 {
	if len(g.Accel) < 2 {
		return 0
	}
	return float64(len(g.Accel)-1) * g.DT
}

// Validate checks the record is usable as an excitation.
func (g GroundMotion) Validate() error {
	if g.DT <= 0 {
		return fmt.Errorf("record %q: dt %g must be positive", g.Name, g.DT)
	}
	if len(g.Accel) == 0 {
		return fmt.Errorf("record %q: no samples", g.Name)
	}
	if _, err := g.scale(); err != nil {
		return err
	}
	return nil
}

func (g GroundMotion) scale() (float64, error) {
	switch g.Unit {
	case UnitG:
		return unit.G, nil
	case UnitMS2, "":
		return 1, nil
	}
	return 0, fmt.Errorf("record %q: unknown unit %q", g.Name, g.Unit)
}

// Scaled returns the acceleration history in m/s².
func (g GroundMotion) Scaled() []float64 {
	out := make([]float64, len(g.Accel))
	if g.Unit == UnitG {
		for i, a := range g.Accel {
			out[i] = unit.FromG(a)
		}
		return out
	}
	copy(out, g.Accel)
	return out
}

// At returns the ground acceleration in m/s² at time t, interpolating
// linearly between samples. Outside the record the excitation is zero.
func (g GroundMotion) At(t float64) float64 {
	if t < 0 || len(g.Accel) == 0 || g.DT <= 0 {
		return 0
	}
	f, err := g.scale()
	if err != nil {
		return 0
	}
	if t > g.Duration() {
		return 0
	}
	i := int(t / g.DT)
	if i >= len(g.Accel)-1 {
		return g.Accel[len(g.Accel)-1] * f
	}
	frac := (t - float64(i)*g.DT) / g.DT
	return (g.Accel[i] + frac*(g.Accel[i+1]-g.Accel[i])) * f
}

// PGA returns the signed peak ground acceleration in m/s².
func (g GroundMotion) PGA() float64 { return SignedPeak(g.Scaled()) }
