package wrapper

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCompiler writes a shell script that records its arguments, one per
// line, to $RECORD and exits with $DELEGATE_EXIT.
func fakeCompiler(t *testing.T) (script, record string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler is a /bin/sh script")
	}
	dir := t.TempDir()
	script = filepath.Join(dir, "cc")
	record = filepath.Join(dir, "args.txt")
	body := "#!/bin/sh\n" +
		"for a in \"$@\"; do printf '%s\\n' \"$a\"; done > \"$RECORD\"\n" +
		"exit \"${DELEGATE_EXIT:-0}\"\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	return script, record
}

func recordedArgs(t *testing.T, record string) []string {
	t.Helper()
	data, err := os.ReadFile(record)
	require.NoError(t, err)
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
