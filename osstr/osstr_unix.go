//go:build !windows

package osstr

import "os"

func lookup(name string) Value {
	s, ok := os.LookupEnv(name)
	if !ok {
		return Absent()
	}
	return Of(s)
}

func nativeFields(v Value) ([]string, error) { return SplitBytes(v.raw), nil }
