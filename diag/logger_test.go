package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_TaggedDefaults(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Debug("hidden")
	l.Info("hello %s", "world")
	l.Error("boom")
	assert.Equal(t, "[INFO] hello world\n[ERROR] boom\n", buf.String())
}

func TestLogger_CustomPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf).
		WithLevel(LevelDebug).
		SetPrefix(LevelDebug, "tool:").
		SetPrefix(LevelError, "tool error:")
	l.Debug("crate=%s", "foo")
	l.Error("failed: %v", "cause")
	assert.Equal(t, "tool: crate=foo\ntool error: failed: cause\n", buf.String())
}

func TestLogger_PlainAndSingleLine(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).WithFormat(FormatPlain).Warning("a\nb")
	assert.Equal(t, "a b\n", buf.String())
}

func TestLogger_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).WithTimestamp(true).Info("x")
	line := strings.TrimSuffix(buf.String(), "\n")
	// "[INFO] 15:04:05 x"
	assert.Len(t, line, len("[INFO] 15:04:05 x"))
}

func TestLogger_NilAndDiscard(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled(LevelError))
	l.Error("no panic")

	d := Discard()
	assert.False(t, d.Enabled(LevelError))
	d.Error("nothing")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarning.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}
