// Command roadpath reads a road network description and prints the shortest
// route between its first and last city.
//
// Usage:
//
//	roadpath [strategy] [--input file] [--config file]
//
// strategy is one of "Dijkstra", "Bellman-Ford" or "A*" (case-insensitive);
// anything else falls back to Dijkstra with a warning.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/roadpath/route"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, route.ErrNoPath) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
