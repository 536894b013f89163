package wrapper

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Executor runs the delegate compiler. Streams, environment and working
// directory are handed to the child untouched; the wrapper never reads or
// buffers them.
type Executor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // nil inherits the parent environment
	Dir    string   // empty inherits the working directory
}

// DefaultExecutor inherits the process's standard streams and environment.
func DefaultExecutor() *Executor {
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Env:    os.Environ(),
	}
}

// Run starts delegate with args and blocks until it exits. A delegate that
// cannot be started yields ErrorTypeDelegateSpawn; one that exits non-zero
// or dies from a signal yields ErrorTypeDelegateFailed.
func (x *Executor) Run(ctx context.Context, delegate string, args []string) error {
	//nolint:gosec // running the compiler we were handed is the whole point
	cmd := exec.CommandContext(ctx, delegate, args...)
	// a bare name resolved through "." in PATH still runs, as cargo expects
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}
	cmd.Env = x.Env
	cmd.Dir = x.Dir
	cmd.Stdin = x.Stdin
	cmd.Stdout = x.Stdout
	cmd.Stderr = x.Stderr

	if err := cmd.Start(); err != nil {
		return NewError(ErrorTypeDelegateSpawn, "failed to execute compiler: "+delegate).
			WithCause(err).
			WithContext("delegate", delegate)
	}
	if err := cmd.Wait(); err != nil {
		return toDelegateError(delegate, err)
	}
	return nil
}

func toDelegateError(delegate string, err error) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return NewError(ErrorTypeDelegateFailed, "compiler exited with "+ee.ProcessState.String()).
			WithCause(err).
			WithContext("delegate", delegate).
			WithContext("exit_code", ee.ExitCode())
	}
	// the child ran but copying one of its streams failed
	return NewError(ErrorTypeDelegateSpawn, "failed to wait for compiler: "+delegate).
		WithCause(err).
		WithContext("delegate", delegate)
}
