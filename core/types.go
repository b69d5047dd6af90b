// Package core defines the road Graph, the Connection edge type, and the
// sentinel errors returned while a Graph is being built.
//
// City identifiers are case-insensitive: every name passing through the API is
// normalised with NormalizeCity before it is stored or looked up, so "paris"
// and "PARIS" always address the same node.
//
// Errors:
//
//	ErrEmptyCity        - city name is blank after trimming.
//	ErrDuplicateCity    - AddCity called twice for the same normalised name.
//	ErrCityNotFound     - connection references an unregistered city.
//	ErrNegativeDistance - connection distance below zero.
//	ErrInvalidGraph     - start, destination or cities missing after the build.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrEmptyCity indicates a blank city name.
	ErrEmptyCity = errors.New("core: city name is empty")

	// ErrDuplicateCity indicates the normalised city name was already declared.
	ErrDuplicateCity = errors.New("core: duplicate city")

	// ErrCityNotFound indicates a connection endpoint that was never registered.
	ErrCityNotFound = errors.New("core: city was not listed in city list")

	// ErrNegativeDistance indicates a connection with a distance below zero.
	ErrNegativeDistance = errors.New("core: connection distance is negative")

	// ErrInvalidGraph indicates the graph lacks a start, a destination or any city.
	ErrInvalidGraph = errors.New("core: graph is not valid")
)

// Connection is a one-way road to city To of length Distance.
//
// The solver reuses the same type as its frontier record, in which case
// Distance holds the accumulated distance from the start city.
type Connection struct {
	// To is the normalised identifier of the target city.
	To string

	// Distance is the non-negative road length (or accumulated distance).
	Distance int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictConnections makes AddConnection reject targets that were never
// registered instead of registering them implicitly.
func WithStrictConnections() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is a directed, weighted adjacency-list graph of cities.
//
// Roads are conceptually undirected, but the Graph stores exactly the
// connections it is given: whoever populates it owns the "insert both
// directions" contract. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	strict bool // reject unknown connection targets

	// cities[id] is the ordered list of outgoing connections of id.
	cities map[string][]Connection

	// declared holds ids registered through AddCity; ids present in cities
	// but missing here were created implicitly as connection targets.
	declared map[string]struct{}

	start       string
	destination string
}

// NewGraph creates an empty Graph with the given options.
// By default connection targets are registered implicitly.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		cities:   make(map[string][]Connection),
		declared: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NormalizeCity returns the canonical identifier for name: surrounding
// whitespace removed, upper case.
func NormalizeCity(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
