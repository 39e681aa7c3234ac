package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/executor"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/arthur-debert/clangfmt/pkg/output"
	"github.com/arthur-debert/clangfmt/pkg/paths"
	"github.com/arthur-debert/clangfmt/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultInterval is the minimum time between two progress updates
const DefaultInterval = 200 * time.Millisecond

// Selector decides whether a file is formatted
type Selector interface {
	Passes(path string) bool
}

// Options contains the capabilities and settings for a Driver
type Options struct {
	// FS is used for every stat and directory read
	FS types.FS

	// Runner invokes the formatter
	Runner executor.Runner

	// Reporter receives progress and results. Defaults to NopReporter.
	Reporter output.Reporter

	// Selector is usually a *patterns.Filter
	Selector Selector

	// Root is the repository root. Inputs default to it and display
	// paths are relative to it.
	Root string

	// Executable and Args form the command; the file path is appended
	Executable string
	Args       []string

	// Progress enables Status and Info calls on the Reporter
	Progress bool

	// Interval rate-limits Status calls. Zero means DefaultInterval.
	Interval time.Duration

	// Now is the clock used for rate limiting. Defaults to time.Now.
	Now func() time.Time
}

// Driver formats files with an external tool
type Driver struct {
	fs         types.FS
	runner     executor.Runner
	reporter   output.Reporter
	selector   Selector
	root       string
	executable string
	args       []string
	progress   bool
	interval   time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

// Discovery is the outcome of the discovery phase
type Discovery struct {
	// Candidates are the files to format, in invocation order
	Candidates []string

	// Checked counts files seen while walking directories
	Checked int
}

// New creates a Driver
func New(opts Options) (*Driver, error) {
	if opts.FS == nil || opts.Runner == nil || opts.Selector == nil {
		return nil, errors.New(errors.ErrInternal, "driver needs a filesystem, a runner and a selector")
	}
	if opts.Executable == "" {
		return nil, errors.New(errors.ErrConfigValid, "formatter executable is empty")
	}

	d := &Driver{
		fs:         opts.FS,
		runner:     opts.Runner,
		reporter:   opts.Reporter,
		selector:   opts.Selector,
		root:       filepath.Clean(opts.Root),
		executable: opts.Executable,
		args:       append([]string(nil), opts.Args...),
		progress:   opts.Progress,
		interval:   opts.Interval,
		now:        opts.Now,
		logger:     logging.GetLogger("driver"),
	}
	if d.reporter == nil {
		d.reporter = output.NopReporter{}
	}
	if d.interval <= 0 {
		d.interval = DefaultInterval
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d, nil
}

// Run discovers candidates from inputs and formats them. With no inputs
// the whole root is processed.
//
// On failure the returned result holds what was done before the error
// and Done is not reported.
func (d *Driver) Run(ctx context.Context, inputs []string) (*types.RunResult, error) {
	discovery, err := d.Discover(inputs)
	if err != nil {
		return &types.RunResult{}, err
	}

	result, err := d.Format(ctx, discovery.Candidates)
	result.Checked = discovery.Checked
	if err != nil {
		return result, err
	}

	d.reporter.Done(result)
	d.logger.Info().
		Int("considered", result.Considered).
		Int("altered", result.Altered).
		Msg("Run complete")
	return result, nil
}

// Discover resolves inputs into the ordered candidate list. Every input
// is classified before any directory is walked, so a bad path fails the
// run before anything else happens.
func (d *Driver) Discover(inputs []string) (*Discovery, error) {
	if len(inputs) == 0 {
		inputs = []string{d.root}
	}

	w := &walker{
		driver: d,
		seen:   make(map[string]bool),
	}

	var dirs []string
	for _, input := range inputs {
		path := absolute(input)
		info, err := d.fs.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPathNotFound, output.MsgPathNotExisted, input).
				WithDetail("path", input)
		}

		item := types.WorkItem{Path: path}
		switch {
		case info.IsDir():
			item.Kind = types.WorkItemDirectory
			dirs = append(dirs, path)
		case info.Mode().IsRegular():
			item.Kind = types.WorkItemFile
			w.consider(path)
		default:
			return nil, errors.Newf(errors.ErrPathInvalid, "%s is neither a regular file nor a directory", input).
				WithDetail("path", input)
		}
		d.logger.Trace().Str("path", item.Path).Str("kind", item.Kind.String()).Msg("Classified input")
	}

	if len(dirs) > 0 {
		d.info(output.MsgFindingFiles)
		w.throttle = newThrottle(d.now, d.interval)
		for _, dir := range dirs {
			if err := w.walk(dir); err != nil {
				return nil, err
			}
		}
		d.info(fmt.Sprintf(output.MsgDoneFinding, len(w.candidates)))
	}

	d.logger.Debug().
		Int("checked", w.checked).
		Int("candidates", len(w.candidates)).
		Msg("Discovery complete")

	return &Discovery{Candidates: w.candidates, Checked: w.checked}, nil
}

// Format invokes the formatter on each candidate in order and stops at
// the first failure
func (d *Driver) Format(ctx context.Context, candidates []string) (*types.RunResult, error) {
	result := &types.RunResult{Considered: len(candidates)}

	d.info(fmt.Sprintf(output.MsgRunningFormat, filepath.Base(d.executable), len(candidates)))
	t := newThrottle(d.now, d.interval)

	for i, path := range candidates {
		display := paths.DisplayPath(d.root, path)
		if d.progress && t.ready() {
			pct := float64(i+1) / float64(len(candidates)) * 100
			d.reporter.Status(fmt.Sprintf(output.MsgFileStatus, i+1, len(candidates), pct, display))
		}

		altered, err := d.formatFile(ctx, path)
		if err != nil {
			return result, err
		}
		if altered {
			result.MarkAltered(display)
			d.reporter.Altered(display)
		}
	}

	return result, nil
}

func (d *Driver) formatFile(ctx context.Context, path string) (bool, error) {
	before, err := d.mtime(path)
	if err != nil {
		return false, err
	}

	args := append(append([]string(nil), d.args...), path)
	d.logger.Debug().Str("path", path).Msg("Formatting")
	if err := d.runner.Run(ctx, d.executable, args...); err != nil {
		if errors.IsErrorCode(err, errors.ErrToolExecute) {
			return false, err
		}
		return false, errors.Wrapf(err, errors.ErrToolExecute, "formatter failed on %s", path).
			WithDetail("path", path)
	}

	after, err := d.mtime(path)
	if err != nil {
		return false, err
	}
	return !after.Equal(before), nil
}

func (d *Driver) mtime(path string) (time.Time, error) {
	info, err := d.fs.Stat(path)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
			WithDetail("path", path)
	}
	return info.ModTime(), nil
}

func (d *Driver) info(text string) {
	if d.progress {
		d.reporter.Info(text)
	}
}

type walker struct {
	driver     *Driver
	throttle   *throttle
	seen       map[string]bool
	candidates []string
	checked    int
}

// consider appends path if it passes the selector and was not seen yet
func (w *walker) consider(path string) {
	if w.seen[path] {
		return
	}
	if w.driver.selector.Passes(path) {
		w.seen[path] = true
		w.candidates = append(w.candidates, path)
	}
}

// walk visits dir depth-first in name order. Symlinks to directories
// are neither descended into nor treated as files.
func (w *walker) walk(dir string) error {
	d := w.driver
	entries, err := d.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := w.walk(path); err != nil {
				return err
			}
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := d.fs.Stat(path); err == nil && info.IsDir() {
				continue
			}
		}

		w.checked++
		if d.progress && w.throttle.ready() {
			d.reporter.Status(fmt.Sprintf(output.MsgCheckedStatus,
				w.checked, len(w.candidates), paths.DisplayPath(d.root, path)))
		}
		w.consider(path)
	}
	return nil
}

func absolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
