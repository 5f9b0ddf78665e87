// Package domain defines the core data models and contracts shared across drift.
// It contains plain types (model, record and result state) and interfaces only.
package domain
