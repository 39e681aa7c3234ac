// Package filesystem provides filesystem implementations for clangfmt.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used by the command, and an afero-backed one used
// by tests to run discovery and formatting against an in-memory tree.
package filesystem
