// Command lvlid solves the built-in influence diagrams.
//
// Usage:
//
//	lvlid list
//	lvlid solve oil-wildcatter --evidence Oil=wet
//	lvlid tree treatment
//	lvlid dot treatment --format svg --out tree.svg
//
// Global flags: --config file.yaml, --log-level debug|info|warn|error,
// --no-color.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
