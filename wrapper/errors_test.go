package wrapper

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := NewError(ErrorTypeDelegateSpawn, "failed to execute compiler: /nope").
		WithCause(fs.ErrNotExist)
	assert.Equal(t, "failed to execute compiler: /nope: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, ErrDelegateSpawn)
	assert.NotErrorIs(t, err, ErrDelegateFailed)

	assert.Equal(t, "delegate_failed", (&Error{Type: ErrorTypeDelegateFailed}).Error())
}

func TestError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(ErrorTypeInvalidFlagEncoding, "bad"))
	assert.ErrorIs(t, err, ErrInvalidFlagEncoding)

	var we *Error
	assert.True(t, errors.As(err, &we))
	assert.Equal(t, ErrorTypeInvalidFlagEncoding, we.Type)
}

func TestError_WithContextOnBareError(t *testing.T) {
	e := (&Error{Type: ErrorTypeDelegateFailed}).WithContext("exit_code", 3)
	assert.Equal(t, 3, e.Context["exit_code"])
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("x")))
	assert.Equal(t, ExitFailure, ExitCode(NewError(ErrorTypeDelegateFailed, "").WithContext("exit_code", 137)))
}

func TestReportable(t *testing.T) {
	assert.False(t, Reportable(nil))
	assert.False(t, Reportable(NewError(ErrorTypeDelegateFailed, "compiler exited with exit status 2")))
	assert.True(t, Reportable(NewError(ErrorTypeDelegateSpawn, "x")))
	assert.True(t, Reportable(NewError(ErrorTypeInsufficientArguments, "x")))
	assert.True(t, Reportable(errors.New("plain")))
}

func TestDelegateExitCode(t *testing.T) {
	code, ok := DelegateExitCode(NewError(ErrorTypeDelegateFailed, "").WithContext("exit_code", 137))
	assert.True(t, ok)
	assert.Equal(t, 137, code)

	_, ok = DelegateExitCode(NewError(ErrorTypeDelegateSpawn, ""))
	assert.False(t, ok)
	_, ok = DelegateExitCode(nil)
	assert.False(t, ok)
}
