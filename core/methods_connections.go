// File: methods_connections.go
// Role: Connection insertion and adjacency queries.
//
// Determinism:
//   - Connections(city) preserves insertion order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "fmt"

// AddConnection appends the directed connection from→to with the given
// distance to from's adjacency list.
//
// Steps:
//  1. Normalise both ids; reject blanks (ErrEmptyCity) and distance < 0
//     (ErrNegativeDistance).
//  2. Reject an unregistered source city (ErrCityNotFound).
//  3. If to is unknown: strict graphs return ErrCityNotFound, otherwise to is
//     registered implicitly with an empty adjacency list.
//  4. Append Connection{To: to, Distance: distance}.
//
// Parallel connections and self-loops are accepted; the solver handles both.
// Complexity: O(1) amortized.
func (g *Graph) AddConnection(from, to string, distance int64) error {
	fromID, toID := NormalizeCity(from), NormalizeCity(to)
	if fromID == "" || toID == "" {
		return ErrEmptyCity
	}
	if distance < 0 {
		return fmt.Errorf("%w: %s->%s distance=%d", ErrNegativeDistance, fromID, toID, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	list, ok := g.cities[fromID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCityNotFound, fromID)
	}
	if _, ok = g.cities[toID]; !ok {
		if g.strict {
			return fmt.Errorf("%w: %s", ErrCityNotFound, toID)
		}
		g.cities[toID] = make([]Connection, 0)
	}
	g.cities[fromID] = append(list, Connection{To: toID, Distance: distance})

	return nil
}

// Connections returns a copy of the outgoing connections of city, in
// insertion order. Unknown cities yield nil; the call never fails.
func (g *Graph) Connections(city string) []Connection {
	id := NormalizeCity(city)
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.cities[id]
	if !ok {
		return nil
	}
	out := make([]Connection, len(list))
	copy(out, list)

	return out
}

// ConnectionCount returns the total number of stored directed connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, list := range g.cities {
		n += len(list)
	}

	return n
}
