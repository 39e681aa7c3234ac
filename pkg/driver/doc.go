// Package driver runs the external formatter over a set of files.
//
// A run has two phases. Discover classifies each input path with a
// single Stat, walks directory inputs depth-first in name order and
// keeps the files that pass the include/exclude Filter. Format then
// invokes the formatter on each candidate in order and compares the
// file's mtime before and after to decide whether it was altered.
//
// The driver is synchronous: one child process at a time, stopping at
// the first failure. Files formatted before a failure stay formatted.
//
// All side effects go through injected capabilities (types.FS,
// executor.Runner, output.Reporter and a clock) so the whole flow can
// be tested on an in-memory filesystem with a fake formatter.
package driver
