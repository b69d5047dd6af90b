package route

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
)

// Reconstruct walks res.Prev backwards from destination to res.Source and
// returns the route in travel order with the distance from res.Dist.
//
// An unreachable destination yields ErrNoPath rather than a one-city route.
// destination == res.Source yields the single-city route with distance 0.
// A result computed with early exit only answers for its own Target; any
// other destination yields ErrNotFinal.
func Reconstruct(res *dijkstra.Result, destination string) (Route, error) {
	if res == nil {
		return Route{}, ErrNilResult
	}
	dest := core.NormalizeCity(destination)
	if !res.Final(dest) {
		return Route{}, fmt.Errorf("%w: search stopped at %s, asked for %s", ErrNotFinal, res.Target, dest)
	}

	total, ok := res.DistanceTo(dest)
	if !ok {
		return Route{}, fmt.Errorf("%w: %s is unreachable from %s", ErrNoPath, dest, res.Source)
	}

	// Reversed: destination first.
	reversed := []string{dest}
	for cur := dest; cur != res.Source; {
		p, ok := res.Prev[cur]
		// A chain longer than the map itself must contain a cycle.
		if !ok || len(reversed) > len(res.Prev) {
			return Route{}, fmt.Errorf("%w: stopped at %s", ErrBrokenChain, cur)
		}
		reversed = append(reversed, p)
		cur = p
	}

	cities := make([]string, len(reversed))
	for i, c := range reversed {
		cities[len(reversed)-1-i] = c
	}

	return Route{Cities: cities, Distance: total}, nil
}

// Report writes the single result line
//
//	Shortest Path: A -> B -> C, Distance: 20 km
func Report(w io.Writer, r Route) error {
	_, err := fmt.Fprintf(w, "Shortest Path: %s, Distance: %d %s\n", r, r.Distance, r.unit())

	return err
}

// ReportNoPath writes the line used when the destination is unreachable.
// It never starts with "Shortest Path:", so callers can tell the outcomes apart.
func ReportNoPath(w io.Writer, start, destination string) error {
	_, err := fmt.Fprintf(w, "No path found from %s to %s\n", core.NormalizeCity(start), core.NormalizeCity(destination))

	return err
}
