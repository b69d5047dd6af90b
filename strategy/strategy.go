// Package strategy names the shortest-path algorithms roadpath knows about and
// maps each to a Solver. The set is closed: Dijkstra, Bellman-Ford and A*.
// Only Dijkstra is implemented; the others report ErrNotImplemented.
package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
)

// ErrNotImplemented is returned by solvers for recognised but unsupported strategies.
var ErrNotImplemented = errors.New("strategy: not implemented")

// Strategy identifies a shortest-path algorithm.
type Strategy int

const (
	// Dijkstra is the default and only implemented strategy.
	Dijkstra Strategy = iota
	// BellmanFord is recognised but not implemented.
	BellmanFord
	// AStar is recognised but not implemented.
	AStar
)

var names = [...]string{
	Dijkstra:    "Dijkstra",
	BellmanFord: "Bellman-Ford",
	AStar:       "A*",
}

// All returns every known strategy in declaration order.
func All() []Strategy {
	return []Strategy{Dijkstra, BellmanFord, AStar}
}

// Name returns the display name, e.g. "Bellman-Ford".
func (s Strategy) Name() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return names[s]
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return s.Name() }

// Parse looks name up by display name, ignoring case and surrounding space.
func Parse(name string) (Strategy, bool) {
	name = strings.TrimSpace(name)
	for _, s := range All() {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}

	return Dijkstra, false
}

// Resolve picks the strategy from the first positional argument. A missing or
// unknown name falls back to Dijkstra and returns a warning for the user.
func Resolve(args []string) (Strategy, string) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return Dijkstra, "no path-finding strategy given, using Dijkstra"
	}
	s, ok := Parse(args[0])
	if !ok {
		return Dijkstra, fmt.Sprintf("unknown path-finding strategy %q, using Dijkstra", args[0])
	}

	return s, ""
}

// Solver computes shortest paths over a built graph.
type Solver interface {
	Solve(g *core.Graph) (*dijkstra.Result, error)
}

// For returns the Solver for s. Dijkstra options are applied only by the
// Dijkstra solver.
func For(s Strategy, opts ...dijkstra.Option) Solver {
	if s == Dijkstra {
		return dijkstraSolver{opts: opts}
	}

	return unsupported{strategy: s}
}

// Implemented reports whether s has a working Solver.
func (s Strategy) Implemented() bool { return s == Dijkstra }

type dijkstraSolver struct {
	opts []dijkstra.Option
}

func (d dijkstraSolver) Solve(g *core.Graph) (*dijkstra.Result, error) {
	return dijkstra.Dijkstra(g, d.opts...)
}

type unsupported struct {
	strategy Strategy
}

func (u unsupported) Solve(*core.Graph) (*dijkstra.Result, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, u.strategy.Name())
}
