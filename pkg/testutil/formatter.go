package testutil

import (
	"context"
	"time"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/spf13/afero"
)

// FakeFormatter is an executor.Runner that treats the last argument as
// the file to format
type FakeFormatter struct {
	mem    afero.Fs
	alter  map[string]bool
	failOn map[string]int

	// Calls holds the full argv of every invocation
	Calls [][]string
}

// NewFakeFormatter creates a formatter that changes nothing
func NewFakeFormatter(mem afero.Fs) *FakeFormatter {
	return &FakeFormatter{
		mem:    mem,
		alter:  make(map[string]bool),
		failOn: make(map[string]int),
	}
}

// Alter makes the formatter bump the mtime of paths
func (f *FakeFormatter) Alter(paths ...string) *FakeFormatter {
	for _, p := range paths {
		f.alter[p] = true
	}
	return f
}

// FailOn makes the formatter exit with code when given path
func (f *FakeFormatter) FailOn(path string, code int) *FakeFormatter {
	f.failOn[path] = code
	return f
}

// Run implements executor.Runner
func (f *FakeFormatter) Run(ctx context.Context, name string, args ...string) error {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	if len(args) == 0 {
		return errors.New(errors.ErrToolExecute, "no file given")
	}

	path := args[len(args)-1]
	if code, ok := f.failOn[path]; ok {
		return errors.Newf(errors.ErrToolExecute, "%s exited with status %d", name, code).
			WithDetail("exit_code", code)
	}
	if f.alter[path] {
		info, err := f.mem.Stat(path)
		if err != nil {
			return err
		}
		later := info.ModTime().Add(time.Second)
		return f.mem.Chtimes(path, later, later)
	}
	return nil
}

// Files returns the file argument of every invocation, in order
func (f *FakeFormatter) Files() []string {
	var out []string
	for _, call := range f.Calls {
		out = append(out, call[len(call)-1])
	}
	return out
}
