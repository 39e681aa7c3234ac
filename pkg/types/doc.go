// Package types defines the core types and interfaces shared across clangfmt.
// This includes the FS seam used for every filesystem read, and the
// WorkItem and RunResult data structures produced by a formatting run.
package types
