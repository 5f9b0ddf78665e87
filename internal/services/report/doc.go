// Package report persists finished runs: the manifest, the response
// histories as CSV and the acceleration and displacement figures.
package report
