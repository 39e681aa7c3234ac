// Package output renders a formatting run for the user.
//
// The driver talks to a Reporter and never writes to the console itself.
// Reporters are a side channel: nothing they do, including failing to
// write, feeds back into the run result.
//
// Four reporters exist:
//
//   - TextReporter in terminal mode rewrites a single status line in
//     place with carriage returns and prints permanent lines below it.
//   - TextReporter in plain mode drops status lines. It is used when
//     stdout is piped.
//   - JSONReporter prints only the final RunResult as JSON.
//   - NopReporter discards everything, for tests and library callers.
package output
