// Package commands defines the drift CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init      Write a starter three-story model file
//   - validate  Check a model file and print its stories
//   - periods   Eigen analysis: periods, frequencies, mode shapes
//   - run       Nonlinear time-history analysis of a model under a record
//   - batch     The same model through several records concurrently
//   - records   List the local record library
//   - import    Parse an AT2 or plain-text record into the library
//   - fetch     Download a record from the archive
//   - archive   List the records the remote archive holds
//   - inspect   Show one library record in detail
//
// # Implementation
//
// The root command resolves the home directory and builds a dependency graph
// (stores, archive client, analysis services) before any subcommand runs, so
// handlers share one app context and logger.
package commands
