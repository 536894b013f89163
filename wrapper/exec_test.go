package wrapper

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Success(t *testing.T) {
	script, record := fakeCompiler(t)
	x := &Executor{Env: []string{"RECORD=" + record}}
	require.NoError(t, x.Run(context.Background(), script, []string{"-O2", "file.c"}))
	assert.Equal(t, []string{"-O2", "file.c"}, recordedArgs(t, record))
}

func TestExecutor_NonZeroExit(t *testing.T) {
	script, record := fakeCompiler(t)
	x := &Executor{Env: []string{"RECORD=" + record, "DELEGATE_EXIT=137"}}
	err := x.Run(context.Background(), script, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelegateFailed)
	assert.False(t, Reportable(err))

	code, ok := DelegateExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 137, code)
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestExecutor_SpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-compiler")
	err := (&Executor{}).Run(context.Background(), missing, []string{"-V"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDelegateSpawn)
	assert.True(t, Reportable(err))
	assert.Contains(t, err.Error(), "failed to execute compiler: "+missing)

	var we *Error
	require.True(t, errors.As(err, &we))
	assert.Equal(t, missing, we.Context["delegate"])
	assert.NotNil(t, we.Cause)
}

func TestExecutor_NotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute permission bits are a unix concept")
	}
	path := filepath.Join(t.TempDir(), "cc")
	require.NoError(t, os.WriteFile(path, []byte("not a program"), 0o644))
	err := (&Executor{}).Run(context.Background(), path, nil)
	assert.ErrorIs(t, err, ErrDelegateSpawn)
}

func TestExecutor_StreamsPassThrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	var out, errOut bytes.Buffer
	x := &Executor{
		Stdin:  bytes.NewBufferString("from stdin"),
		Stdout: &out,
		Stderr: &errOut,
	}
	err := x.Run(context.Background(), "/bin/sh", []string{"-c", "cat; echo oops >&2"})
	require.NoError(t, err)
	assert.Equal(t, "from stdin", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}

func TestExecutor_EnvironmentIsInherited(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	t.Setenv("CARGO_LLVM_COV", "1")
	var out bytes.Buffer
	x := DefaultExecutor()
	x.Stdout = &out
	err := x.Run(context.Background(), "/bin/sh", []string{"-c", "printf %s \"$CARGO_LLVM_COV\""})
	require.NoError(t, err)
	assert.Equal(t, "1", out.String())
}

func TestExecutor_RunsDelegateFoundThroughDotInPath(t *testing.T) {
	script, record := fakeCompiler(t)
	t.Chdir(filepath.Dir(script))
	t.Setenv("PATH", ".")

	x := &Executor{Env: []string{"RECORD=" + record}}
	require.NoError(t, x.Run(context.Background(), filepath.Base(script), []string{"-V"}))
	assert.Equal(t, []string{"-V"}, recordedArgs(t, record))
}
