// Command lineno prints the lines of a file selected by line numbers
// and ranges.
package main

import (
	"fmt"
	"os"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lineno:", err)
		os.Exit(1)
	}
}
