// Package roadpath finds the shortest road route between two cities.
//
// A run reads a text description of cities and two-way roads, builds a
// directed graph, runs Dijkstra from the first listed city and prints the
// route to the last one:
//
//	Shortest Path: BERLIN -> FRANKFURT, Distance: 545 km
//
// Packages:
//
//	core/         – Graph, Connection and the build-time sentinel errors
//	dijkstra/     – lazy-deletion Dijkstra producing distance and predecessor maps
//	route/        – path reconstruction and the result line
//	strategy/     – Dijkstra, Bellman-Ford and A* names; only Dijkstra solves
//	input/        – the /start-cities, /start-connections file format
//	config/       – YAML run configuration
//	cmd/roadpath/ – the command-line tool
//
// Quick example:
//
//	g, err := input.Load("input/input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.Dijkstra(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := route.Reconstruct(res, g.Destination())
//	if errors.Is(err, route.ErrNoPath) {
//	    // destination unreachable
//	}
//
//	go install github.com/katalvlaran/roadpath/cmd/roadpath@latest
package roadpath
