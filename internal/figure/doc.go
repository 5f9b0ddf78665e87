// Package figure renders run results as PNG figures.
//
// Each figure stacks one panel per response series over a common time axis
// with a shared symmetric vertical scale, so the stories can be compared at
// a glance. Legends carry the signed peak of each series.
package figure
