// Command iim runs the Inoperability Input-Output Model from the
// command line: full per-sector reports, n-th order interdependency
// extraction and post-processing of saved runs.
package main

import "os"

func main() {
	// Cobra prints "Error: ..." to stderr for a failing RunE; the exit
	// status is all that is left to signal.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
