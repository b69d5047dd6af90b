// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph of cities with non-negative connection distances.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Every relaxation pushes one frontier record; no decrease-key is used.
//   - Each heap Push/Pop costs O(log N), N ≤ E + 1.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case frontier entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - Negative distances never reach the solver: core.Graph.AddConnection rejects them.
//   - Stale frontier records (distance larger than the recorded best) are skipped.
//   - Extraction stops at the target unless WithoutEarlyExit is given.
//   - Ties on distance are broken by city id, so runs are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// Dijkstra computes shortest distances from the start city to every city
// reachable in g, together with the predecessor map needed to rebuild the
// path to the destination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must pass g.Validate (wrapped core.ErrInvalidGraph).
//
// An unreachable destination is not an error: Dist[destination] stays
// Unreachable and it has no Prev entry.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	if cfg.Source == "" {
		cfg.Source = g.StartingPoint()
	}
	if cfg.Target == "" {
		cfg.Target = g.Destination()
	}
	cfg.Source = core.NormalizeCity(cfg.Source)
	cfg.Target = core.NormalizeCity(cfg.Target)

	cities := g.Cities()

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(cities)),
		prev:    make(map[string]string, len(cities)),
		pq:      make(frontier, 0, len(cities)),
	}
	r.init(cities)
	r.process()

	return &Result{
		Source:    cfg.Source,
		Target:    cfg.Target,
		Dist:      r.dist,
		Prev:      r.prev,
		Settled:   r.settled,
		EarlyExit: cfg.EarlyExit,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	pq      frontier
	settled int
}

// init sets dist to Unreachable for every registered city, zero for the
// source, and seeds the frontier with (source, 0).
func (r *runner) init(cities []string) {
	for _, c := range cities {
		r.dist[c] = Unreachable
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, core.Connection{To: r.options.Source, Distance: 0})
}

// process is the main loop: extract the closest frontier record, stop at the
// target when early exit is on, otherwise relax its outgoing connections.
func (r *runner) process() {
	log := r.options.Logger
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(core.Connection)
		u, d := item.To, item.Distance

		// Stale record: a shorter distance to u was pushed after this one.
		if d > r.dist[u] {
			continue
		}
		r.settled++
		if log != nil {
			log.Debug("dijkstra: extract", "city", u, "distance", d)
		}

		if r.options.EarlyExit && u == r.options.Target {
			break
		}

		r.relax(u, d)
	}
}

// relax tries to improve every neighbour of u through u. Only strictly
// shorter candidates update dist and prev and enter the frontier.
func (r *runner) relax(u string, d int64) {
	log := r.options.Logger
	for _, e := range r.g.Connections(u) {
		// d + w would overflow past the sentinel.
		if e.Distance > Unreachable-1-d {
			continue
		}
		candidate := d + e.Distance

		current, ok := r.dist[e.To]
		if !ok {
			current = Unreachable
		}
		if candidate >= current {
			continue
		}

		r.dist[e.To] = candidate
		r.prev[e.To] = u
		heap.Push(&r.pq, core.Connection{To: e.To, Distance: candidate})
		if log != nil {
			log.Debug("dijkstra: relax", "from", u, "to", e.To, "distance", candidate)
		}
	}
}

// frontier is a min-heap of core.Connection records ordered by accumulated
// Distance, then by city id.
type frontier []core.Connection

// Len returns the number of records in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by distance, breaking ties by city id.
func (pq frontier) Less(i, j int) bool {
	if pq[i].Distance != pq[j].Distance {
		return pq[i].Distance < pq[j].Distance
	}

	return pq[i].To < pq[j].To
}

// Swap swaps two records.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a core.Connection. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(core.Connection)) }

// Pop removes and returns the last record. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
