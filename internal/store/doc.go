// Package store provides file-based persistence for drift's data.
//
// It contains the concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk under the user's configured home
// directory. All methods are concurrency-safe via internal locking.
//
// The package includes:
//   - the ground-motion record library (RecordLibrary)
//   - per-run result directories (ResultDir)
//   - parsers for the PEER AT2 and plain-text record formats
//   - the model-file reader
package store
