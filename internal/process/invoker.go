package process

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Status is the termination status of a foreground process.
type Status struct {
	// ExitCode is the child's exit code, or -1 if it was killed by a signal.
	ExitCode int
}

// Success reports whether the process exited with code zero.
func (s Status) Success() bool {
	return s.ExitCode == 0
}

// Invoker runs external executables.
//
// Neither mode applies timeouts, retries or cancellation once a child is
// running: ctx is only consulted before launch.
type Invoker struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithStdio replaces the streams inherited by foreground processes.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(i *Invoker) {
		i.stdin = stdin
		i.stdout = stdout
		i.stderr = stderr
	}
}

// WithLogger sets the logger for the invoker.
func WithLogger(l *slog.Logger) Option {
	return func(i *Invoker) {
		i.logger = l
	}
}

// New creates an Invoker whose foreground processes share the caller's
// standard streams.
func New(opts ...Option) *Invoker {
	i := &Invoker{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// RunForeground runs name with args in dir and blocks until it exits.
// The child's output is streamed live through the invoker's streams.
// A non-zero exit is reported through Status, not as an error; the error
// is a *LaunchError when the executable cannot be found or started.
func (i *Invoker) RunForeground(ctx context.Context, name string, args []string, dir string) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}

	cmd := exec.Command(name, args...) //nolint:noctx // children run to completion
	cmd.Dir = dir
	cmd.Stdin = i.stdin
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	i.logger.Debug("starting foreground process", "executable", name, "args", args, "dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status := Status{ExitCode: exitErr.ExitCode()}
			i.logger.Debug("foreground process failed", "executable", name, "exit_code", status.ExitCode)
			return status, nil
		}
		return Status{}, &LaunchError{Executable: name, Err: err}
	}

	i.logger.Debug("foreground process finished", "executable", name)
	return Status{ExitCode: 0}, nil
}

// RunBackground starts name with args in dir and returns without waiting.
// Standard streams are connected to the null device and the child does not
// share the caller's console. A non-nil error is always a *LaunchError or a
// context error; callers are expected to treat it as a warning.
func (i *Invoker) RunBackground(ctx context.Context, name string, args []string, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := backgroundCommand(name, args)
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		i.logger.Debug("background process failed to start", "executable", name, "error", err)
		return &LaunchError{Executable: name, Err: err}
	}

	i.logger.Debug("background process started", "executable", name, "pid", cmd.Process.Pid, "dir", dir)

	if err := cmd.Process.Release(); err != nil {
		i.logger.Debug("release background process", "executable", name, "error", err)
	}
	return nil
}
