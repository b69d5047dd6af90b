// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative integer distances.
//
// Overview:
//
//   - Distances start at Unreachable for every registered city and 0 for the
//     start city.
//   - A min-heap frontier of core.Connection records (city, accumulated
//     distance) drives extraction in increasing distance order.
//   - Relaxation is strict ("<"): a city's distance and predecessor change only
//     when a shorter route is found, and each improvement pushes a new record.
//   - Stale records are skipped when popped (lazy deletion, no decrease-key).
//   - By default the loop stops once the destination is extracted; its
//     distance is final at that point because weights are non-negative.
//
// Unreachable destinations:
//
//	Dijkstra returns no error when the destination cannot be reached. The
//	Result reports it through Dist (Unreachable), an absent Prev entry and
//	Result.Reachable. Package route turns that into an explicit "no path".
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - WithSource / WithTarget override the graph's endpoints.
//	  - WithoutEarlyExit explores every reachable city.
//	  - WithLogger traces extractions and relaxations at debug level.
//
// Thread safety:
//
//   - All solver state lives inside one call; the Graph is only read.
//     Concurrent runs on the same Graph are safe as long as nobody mutates it.
package dijkstra
