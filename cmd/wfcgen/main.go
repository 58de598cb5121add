// Command wfcgen generates a tile map from a catalog file using the wave
// function collapse solver and prints the result as ASCII.
//
// Usage:
//
//	wfcgen generate --catalog tiles.yaml --width 20 --height 10 --seed 42
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
