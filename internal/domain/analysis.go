package domain

import (
	"fmt"
	"math"
	"time"
)

// TransientOptions controls the time-history integration.
type TransientOptions struct {
	DT            float64 `json:"dt"`       // analysis and output step, s
	Duration      float64 `json:"duration"` // s; 0 means the record duration
	Gamma         float64 `json:"gamma"`
	Beta          float64 `json:"beta"`
	Tolerance     float64 `json:"tolerance"`      // unbalanced-force norm
	MaxIterations int     `json:"max_iterations"` // Newton iterations per step
}

// DefaultTransientOptions returns the average-acceleration Newmark setup used
// throughout: gamma 1/2, beta 1/4, unbalance tolerance 1e-12, 100 iterations,
// 0.01 s step.
func DefaultTransientOptions() TransientOptions {
	return TransientOptions{
		DT:            0.01,
		Gamma:         0.5,
		Beta:          0.25,
		Tolerance:     1e-12,
		MaxIterations: 100,
	}
}

// Steps returns the number of integration steps covering d seconds.
func (o TransientOptions) Steps(d float64) int {
	if o.DT <= 0 || d <= 0 {
		return 0
	}
	return int(math.Ceil(d/o.DT - 1e-9))
}

// Validate checks the options are integrable.
func (o TransientOptions) Validate() error {
	if o.DT <= 0 {
		return fmt.Errorf("dt %g must be positive", o.DT)
	}
	if o.Duration < 0 {
		return fmt.Errorf("duration %g must not be negative", o.Duration)
	}
	if o.Gamma < 0.5 {
		return fmt.Errorf("gamma %g below 1/2 loses unconditional stability", o.Gamma)
	}
	if o.Beta <= 0 {
		return fmt.Errorf("beta %g must be positive", o.Beta)
	}
	if o.Tolerance <= 0 {
		return fmt.Errorf("tolerance %g must be positive", o.Tolerance)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("max iterations %d must be at least 1", o.MaxIterations)
	}
	return nil
}

// ModalResult is the outcome of an eigen analysis, modes ascending by
// frequency. Shapes[k] is the mass-normalized shape of mode k+1.
type ModalResult struct {
	Omega     []float64   // rad/s
	Period    []float64   // s
	Frequency []float64   // Hz
	Shapes    [][]float64 // [mode][story]
	AlphaM    float64     // Rayleigh mass coefficient
	BetaKComm float64     // Rayleigh committed-stiffness coefficient
}

// RecordRef pins the exact excitation a run used.
type RecordRef struct {
	Name     string  `json:"name"`
	DT       float64 `json:"dt"`
	Points   int     `json:"points"`
	Unit     string  `json:"unit"`
	Checksum string  `json:"checksum_blake2b"`
}

// RunManifest is the durable description of one transient run.
type RunManifest struct {
	RunID     string           `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
	Model     Model            `json:"model"`
	Record    RecordRef        `json:"record"`
	Options   TransientOptions `json:"options"`
	Periods   []float64        `json:"periods"`
	AlphaM    float64          `json:"rayleigh_alpha_m"`
	BetaKComm float64          `json:"rayleigh_beta_k_comm"`
	Peaks     Peaks            `json:"peaks"`
}

// RunResult bundles everything a finished run produced, in memory.
type RunResult struct {
	Manifest RunManifest
	Modal    ModalResult
	Motion   GroundMotion
	History  *History
}

// RecordInfo summarizes a library record without its samples.
type RecordInfo struct {
	Name   string  `json:"name"`
	DT     float64 `json:"dt"`
	Points int     `json:"points"`
	Unit   string  `json:"unit"`
}

// RunArtifacts lists the files a report produced for one run.
type RunArtifacts struct {
	Dir      string
	Manifest string
	History  string
	Figures  []string
}
