// Package input reads the roadpath text format and builds a core.Graph.
//
// Format:
//
//	/start-cities
//	<N>
//	<city_1>        first city = starting point
//	...
//	<city_N>        last city = destination
//	/start-connections
//	<M>
//	<from> <to> <distance>
//	...
//
// Section markers are matched case-insensitively. Each section is read once;
// a repeated marker later in the file is ignored, as is any other line outside
// a section. Roads are two-way: every connection line inserts from→to and
// to→from unless WithDirected is given.
package input

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/roadpath/core"
)

// Section markers.
const (
	CitiesMarker      = "/start-cities"
	ConnectionsMarker = "/start-connections"
)

// ErrMalformedInput wraps every format error; the message carries the line number.
var ErrMalformedInput = errors.New("input: malformed input")

// Options configures Parse and Load.
type Options struct {
	Directed     bool
	GraphOptions []core.GraphOption
	Logger       *slog.Logger
}

// Option represents a functional option for Parse and Load.
type Option func(*Options)

// WithDirected stores every connection line as a single one-way connection.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) { o.GraphOptions = append(o.GraphOptions, opts...) }
}

// WithLogger reports parsed sections at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
