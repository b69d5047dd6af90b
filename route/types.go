// Package route rebuilds the start→destination city sequence from a
// dijkstra.Result and formats it for the console.
package route

import (
	"errors"
	"strings"
)

// DefaultUnit is the distance unit printed when a Route has none.
const DefaultUnit = "km"

// Sentinel errors returned by Reconstruct.
var (
	// ErrNilResult indicates a nil *dijkstra.Result.
	ErrNilResult = errors.New("route: result is nil")

	// ErrNoPath indicates that the destination is not reachable from the start.
	ErrNoPath = errors.New("route: no path found")

	// ErrBrokenChain indicates a predecessor chain that never reaches the start.
	ErrBrokenChain = errors.New("route: predecessor chain does not reach start")

	// ErrNotFinal indicates a destination other than the solver's target on a
	// result whose search stopped early.
	ErrNotFinal = errors.New("route: distances are not final for this destination")
)

// Route is an ordered city sequence from start to destination inclusive and
// its total distance.
type Route struct {
	Cities   []string
	Distance int64
	Unit     string
}

// String joins the cities with " -> ".
func (r Route) String() string {
	return strings.Join(r.Cities, " -> ")
}

// Hops returns the number of connections travelled.
func (r Route) Hops() int {
	if len(r.Cities) == 0 {
		return 0
	}

	return len(r.Cities) - 1
}

func (r Route) unit() string {
	if r.Unit == "" {
		return DefaultUnit
	}

	return r.Unit
}
