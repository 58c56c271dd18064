// Command modalcore is a modal text editor for the terminal.
package main

import (
	"os"
)

// Version information, set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
