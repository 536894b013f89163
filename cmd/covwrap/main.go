// Command covwrap stands in for a compiler. Installed as cargo's
// RUSTC_WRAPPER or RUSTC_WORKSPACE_WRAPPER it is called as
//
//	covwrap /path/to/rustc [rustc args...]
//
// and, when a cargo-llvm-cov session is active for the unit being compiled,
// prepends CARGO_LLVM_COV_FLAGS to the arguments before running the real
// compiler. Otherwise it runs the compiler exactly as invoked.
package main

import (
	"os"

	"github.com/dzonerzy/go-covwrap/wrapper"
)

func main() {
	os.Exit(wrapper.Main(os.Args))
}
