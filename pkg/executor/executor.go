package executor

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner runs a command to completion
type Runner interface {
	// Run returns nil only when the command started and exited with status 0
	Run(ctx context.Context, name string, args ...string) error
}

// Options contains configuration for the exec runner
type Options struct {
	// Stdout and Stderr receive the child's output. They default to the
	// process's own streams, so formatter diagnostics reach the user.
	Stdout io.Writer
	Stderr io.Writer
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// New creates an ExecRunner
func New(opts Options) *ExecRunner {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &ExecRunner{
		stdout: stdout,
		stderr: stderr,
		logger: logging.GetLogger("executor"),
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.LogCommand(r.logger, name, args)
	commandLine := strings.Join(append([]string{name}, args...), " ")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, errors.ErrToolExecute, "formatter interrupted").
			WithDetail("command", commandLine)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		r.logger.Debug().
			Str("command", commandLine).
			Int("exitCode", exitErr.ExitCode()).
			Msg("Command failed")
		return errors.Wrapf(err, errors.ErrToolExecute, "%s exited with status %d", name, exitErr.ExitCode()).
			WithDetail("command", commandLine).
			WithDetail("exit_code", exitErr.ExitCode())
	}

	return errors.Wrapf(err, errors.ErrToolExecute, "failed to start %s", name).
		WithDetail("command", commandLine)
}
