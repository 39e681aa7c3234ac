// Package executor runs the external formatter.
//
// The driver only needs one thing from a child process: whether it
// exited cleanly. Runner captures that so tests can swap in a fake
// formatter, and ExecRunner is the real implementation on os/exec.
// Calls block until the child exits. There is no timeout; cancelling
// the context kills the child.
package executor
