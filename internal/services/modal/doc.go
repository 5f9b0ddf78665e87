// Package modal computes the natural frequencies, periods and mode shapes of
// a model, and fits Rayleigh damping to its damping ratio.
package modal
