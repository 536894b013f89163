package wrapper

// Invocation is the wrapper's own command line split into its parts.
type Invocation struct {
	Self     string   // argv[0], kept for diagnostics
	Delegate string   // compiler to run
	Args     []string // compiler arguments, a sub-slice of argv
}

// Decode splits argv into the delegate path and its arguments. Tokens are
// returned as-is; Args aliases argv so nothing is copied or re-encoded.
func Decode(argv []string) (Invocation, error) {
	if len(argv) < 2 {
		return Invocation{}, NewError(ErrorTypeInsufficientArguments,
			"wrapper called without compiler path").WithContext("argc", len(argv))
	}
	return Invocation{Self: argv[0], Delegate: argv[1], Args: argv[2:]}, nil
}
