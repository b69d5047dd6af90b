// File: methods_cities.go
// Role: City registration, endpoint markers, validity gate and city queries.
//
// Determinism:
//   - Cities() returns ids sorted lexicographically ascending.
//
// Concurrency:
//   - All state guarded by g.mu (write lock for mutations, read lock for queries).
package core

import (
	"fmt"
	"sort"
)

// AddCity registers a new city with an empty connection list.
//
// Implementation:
//   - Stage 1: Normalise the name and reject blanks (ErrEmptyCity).
//   - Stage 2: Under the write lock, reject a second declaration (ErrDuplicateCity).
//   - Stage 3: Keep an existing implicit adjacency list, or allocate an empty one.
//
// A city first seen as a connection target may be declared once afterwards
// without error; its already-recorded connections are kept.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCity(name string) error {
	id := NormalizeCity(name)
	if id == "" {
		return ErrEmptyCity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.declared[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCity, id)
	}
	g.declared[id] = struct{}{}
	if _, ok := g.cities[id]; !ok {
		g.cities[id] = make([]Connection, 0)
	}

	return nil
}

// HasCity reports whether name is registered, declared or implicit.
func (g *Graph) HasCity(name string) bool {
	id := NormalizeCity(name)
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cities[id]

	return ok
}

// CityCount returns the number of registered cities.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cities)
}

// Cities returns every registered city id in ascending order.
// Complexity: O(V log V).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.cities))
	for id := range g.cities {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// SetStartingPoint stores the normalised start city. Last write wins.
func (g *Graph) SetStartingPoint(name string) {
	g.mu.Lock()
	g.start = NormalizeCity(name)
	g.mu.Unlock()
}

// StartingPoint returns the normalised start city ("" if unset).
func (g *Graph) StartingPoint() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// SetDestination stores the normalised destination city. Last write wins.
func (g *Graph) SetDestination(name string) {
	g.mu.Lock()
	g.destination = NormalizeCity(name)
	g.mu.Unlock()
}

// Destination returns the normalised destination city ("" if unset).
func (g *Graph) Destination() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.destination
}

// IsValid reports whether start, destination and at least one city are present.
//
// It deliberately does not check that the endpoints were registered or that
// destination is reachable from start; the solver reports those outcomes.
func (g *Graph) IsValid() bool {
	return g.Validate() == nil
}

// Validate is the error-returning form of IsValid. The returned error wraps
// ErrInvalidGraph and names the first missing part.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch {
	case g.start == "":
		return fmt.Errorf("%w: starting point is missing", ErrInvalidGraph)
	case g.destination == "":
		return fmt.Errorf("%w: destination is missing", ErrInvalidGraph)
	case len(g.cities) == 0:
		return fmt.Errorf("%w: no cities registered", ErrInvalidGraph)
	}

	return nil
}
