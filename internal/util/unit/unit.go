// Package unit fixes the consistent unit system used across drift:
// kilonewtons, meters and seconds. Masses are therefore in tons
// (kN·s²/m) and accelerations in m/s².
package unit

// Base units.
const (
	KN = 1.0 // kilonewton
	M  = 1.0 // meter
	S  = 1.0 // second
)

// Derived units.
const (
	G   = 9.81 * M / (S * S) // standard gravity
	CM  = 1e-2 * M
	MM  = 1e-3 * M
	Ton = KN * S * S / M
)

// FromG converts an acceleration expressed in g to m/s².
func FromG(a float64) float64 { return a * G }

// ToMM converts meters to millimeters.
func ToMM(x float64) float64 { return x / MM }
