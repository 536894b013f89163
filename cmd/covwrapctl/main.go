// Command covwrapctl explains what covwrap would do for a given build
// environment without running a compiler.
package main

import (
	"os"

	"github.com/dzonerzy/go-covwrap/cmd/covwrapctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
