// Package transient runs nonlinear time-history analyses: it assembles the
// system, fits Rayleigh damping from a modal analysis, integrates the
// equation of motion under uniform base excitation and collects the response
// histories and peaks into a run manifest.
package transient
