// Package testutil provides test doubles for clangfmt components.
//
// Key components:
//   - Env: in-memory repository with the afero filesystem exposed both as
//     afero.Fs (for setup and mtime changes) and as types.FS (for code
//     under test)
//   - FileTree: declarative directory setup
//   - FakeFormatter: an executor.Runner that alters files by bumping
//     their mtime, or fails on demand
//   - FakeClock: a clock that advances on every read
//   - Recorder: an output.Reporter that keeps everything it receives
package testutil
