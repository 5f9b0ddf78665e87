// Package motion manages the ground-motion record library: imports from
// disk, downloads from the archive and record fingerprints.
package motion
