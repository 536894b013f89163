package osstr

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidText is returned by SplitText when a value has no valid text form.
var ErrInvalidText = errors.New("value is not valid text")

// Fields splits v into space-delimited tokens using the platform's native
// strategy: byte splitting where command-line data is bytes, text splitting
// where it is not. An unset value yields no tokens and no error.
func Fields(v Value) ([]string, error) {
	if !v.IsSet() {
		return nil, nil
	}
	return nativeFields(v)
}

// SplitBytes splits raw on runs of the ASCII space byte (0x20), dropping
// empty tokens. Every other byte, valid UTF-8 or not, stays inside its token.
// 0x20 never occurs inside a multi-byte sequence of any ASCII-compatible
// encoding, so no token is ever cut in half.
func SplitBytes(raw string) []string {
	var out []string
	start := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, raw[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, raw[start:])
	}
	return out
}

// SplitText is the fallback for platforms without byte-level arguments. It
// requires v to be valid text and splits it on runs of U+0020 only; tabs and
// other whitespace are part of a token, same as SplitBytes.
func SplitText(v Value) ([]string, error) {
	if v.malformed || !utf8.ValidString(v.raw) {
		return nil, ErrInvalidText
	}
	parts := strings.Split(v.raw, " ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
