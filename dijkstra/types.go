// Package dijkstra defines the result type and configuration options for the
// shortest-path solver over a core.Graph.
//
// Options:
//
//	– WithSource:       start city (default: the graph's starting point).
//	– WithTarget:       destination city (default: the graph's destination).
//	– WithoutEarlyExit: keep extracting after the target has been settled.
//	– WithLogger:       trace extractions and relaxations at debug level.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– core.ErrInvalidGraph (wrapped) if the graph fails its validity gate.
package dijkstra

import (
	"errors"
	"log/slog"
	"math"
)

// Unreachable is the distance recorded for a city no path reaches.
const Unreachable int64 = math.MaxInt64

// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Options configures a single Dijkstra run.
//
// Source    – start city; empty means the graph's starting point.
// Target    – destination city; empty means the graph's destination.
// EarlyExit – stop as soon as Target is extracted from the frontier.
// Logger    – optional debug tracer; nil disables tracing.
type Options struct {
	Source    string
	Target    string
	EarlyExit bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSource overrides the start city.
func WithSource(city string) Option {
	return func(o *Options) {
		o.Source = city
	}
}

// WithTarget overrides the destination city.
func WithTarget(city string) Option {
	return func(o *Options) {
		o.Target = city
	}
}

// WithoutEarlyExit disables the stop-on-target optimisation. Distances to the
// target are identical either way; other cities may only be final without it.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// WithEarlyExit sets the stop-on-target optimisation explicitly.
func WithEarlyExit(enabled bool) Option {
	return func(o *Options) {
		o.EarlyExit = enabled
	}
}

// WithLogger enables debug tracing through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns the options used when none are supplied:
// graph endpoints, early exit enabled, no tracing.
func DefaultOptions() Options {
	return Options{EarlyExit: true}
}

// Result holds the outcome of one Dijkstra run.
//
//   - Dist[c] is the best known distance from Source to c, Unreachable if none.
//   - Prev[c] is the city c was last improved from; absent for Source and for
//     cities that were never relaxed.
//   - Settled counts frontier extractions that were not stale.
//   - EarlyExit records that extraction stopped at Target; only Target's
//     distance and predecessor chain are then guaranteed final.
type Result struct {
	Source    string
	Target    string
	Dist      map[string]int64
	Prev      map[string]string
	Settled   int
	EarlyExit bool
}

// Final reports whether Dist and Prev are final for city.
func (r *Result) Final(city string) bool {
	return !r.EarlyExit || city == r.Target || city == r.Source
}

// DistanceTo returns the distance to city and whether it is reachable.
func (r *Result) DistanceTo(city string) (int64, bool) {
	d, ok := r.Dist[city]
	if !ok || d == Unreachable {
		return Unreachable, false
	}

	return d, true
}

// Reachable reports whether a path from Source to city was found.
func (r *Result) Reachable(city string) bool {
	_, ok := r.DistanceTo(city)

	return ok
}
