package wrapper

import (
	"errors"

	"github.com/dzonerzy/go-covwrap/osstr"
)

// CoverageFlags tokenizes the flag variable. An unset variable yields no
// flags and no error.
func CoverageFlags(ctx Context) ([]string, error) {
	flags, err := osstr.Fields(ctx.Flags)
	if errors.Is(err, osstr.ErrInvalidText) {
		return nil, NewError(ErrorTypeInvalidFlagEncoding,
			ctx.Names.Flags+" contains invalid UTF-8").WithCause(err)
	}
	return flags, err
}

// Inject returns the coverage flags followed by args. Flags go first so that
// anything the build itself passes can still override them. When there are
// no flags args is returned unchanged; otherwise a new slice is allocated and
// args is left untouched.
func Inject(ctx Context, args []string) ([]string, error) {
	flags, err := CoverageFlags(ctx)
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return args, nil
	}
	out := make([]string, 0, len(flags)+len(args))
	out = append(out, flags...)
	return append(out, args...), nil
}
