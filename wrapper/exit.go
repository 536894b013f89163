package wrapper

import "errors"

// Process exit codes. The delegate's own code is never mirrored beyond
// success versus failure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode converts the outcome of a run to this process's exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// Reportable reports whether err deserves a diagnostic line. A delegate that
// exited non-zero has already explained itself on its own streams.
func Reportable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrDelegateFailed)
}

// DelegateExitCode extracts the delegate's raw exit status from an error
// returned by Executor.Run. It is -1 when the delegate was killed by a
// signal. ok is false when err is not a delegate failure.
func DelegateExitCode(err error) (code int, ok bool) {
	var we *Error
	if !errors.As(err, &we) || we.Type != ErrorTypeDelegateFailed {
		return 0, false
	}
	code, ok = we.Context["exit_code"].(int)
	return code, ok
}
