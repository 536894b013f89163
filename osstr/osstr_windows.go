//go:build windows

package osstr

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// lookup reads the raw UTF-16 value so that unpaired surrogates can be
// detected. The stored form is the WTF-8 encoding os.LookupEnv also returns,
// so malformed values stay distinct from each other.
func lookup(name string) Value {
	key, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return Absent()
	}
	buf := make([]uint16, 128)
	for {
		n, err := windows.GetEnvironmentVariable(key, &buf[0], uint32(len(buf)))
		if n == 0 && errors.Is(err, windows.ERROR_ENVVAR_NOT_FOUND) {
			return Absent()
		}
		if n <= uint32(len(buf)) {
			units := buf[:n]
			s := syscall.UTF16ToString(units)
			if !wellFormedUTF16(units) {
				return Malformed(s)
			}
			return Of(s)
		}
		// n is the required size including the terminator
		buf = make([]uint16, n)
	}
}

func nativeFields(v Value) ([]string, error) { return SplitText(v) }
