// Package dijkstra_test contains unit tests for the Dijkstra solver: input
// validation, the reference scenarios, unreachable destinations, early exit
// equivalence, determinism and a brute-force cross-check on small graphs.
package dijkstra_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
)

// buildGraph registers cities in order (first = start, last = destination)
// and adds the given directed connections.
func buildGraph(t *testing.T, cities []string, edges [][3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range cities {
		require.NoError(t, g.AddCity(c))
	}
	for _, e := range edges {
		require.NoError(t, g.AddConnection(e[0].(string), e[1].(string), int64(e[2].(int))))
	}
	g.SetStartingPoint(cities[0])
	g.SetDestination(cities[len(cities)-1])

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_InvalidGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("A"))
	g.SetStartingPoint("A")

	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

// A negative road is refused while building, so the solver only ever sees
// the non-negative ones.
func TestDijkstra_NegativeRoadRejectedAtBuild(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{{"A", "B", 5}})
	require.ErrorIs(t, g.AddConnection("A", "B", -10), core.ErrNegativeDistance)

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Dist["B"])
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestDijkstra_SingleEdge(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{{"A", "B", 5}})

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	d, ok := res.DistanceTo("B")
	require.True(t, ok)
	assert.Equal(t, int64(5), d)
	assert.Equal(t, "A", res.Prev["B"])
	assert.Equal(t, "A", res.Source)
	assert.Equal(t, "B", res.Target)
}

func TestDijkstra_MultiHopBeatsShortcut(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]any{
		{"A", "B", 10},
		{"B", "C", 10},
		{"A", "C", 30},
	})

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	assert.Equal(t, int64(20), res.Dist["C"])
	assert.Equal(t, "B", res.Prev["C"])
	assert.Equal(t, "A", res.Prev["B"])
}

func TestDijkstra_UnreachableDestination(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]any{{"A", "B", 5}})

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Unreachable, res.Dist["C"])
	assert.False(t, res.Reachable("C"))
	_, hasPrev := res.Prev["C"]
	assert.False(t, hasPrev, "unreachable city must not have a predecessor")
	assert.Equal(t, int64(5), res.Dist["B"])
}

func TestDijkstra_StartEqualsDestination(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{{"A", "B", 1}})
	g.SetDestination("a")

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist["A"])
	assert.Empty(t, res.Prev)
	assert.Equal(t, 1, res.Settled)
}

func TestDijkstra_ZeroWeightsAndSelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][3]any{
		{"A", "A", 0},
		{"A", "B", 0},
		{"B", "C", 0},
	})

	res, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist["C"])
	assert.Equal(t, "B", res.Prev["C"])
	_, selfPrev := res.Prev["A"]
	assert.False(t, selfPrev, "self-loop must not relax the start city")
}

func TestDijkstra_CaseInsensitiveOverrides(t *testing.T) {
	g := buildGraph(t, []string{"Paris", "Lyon", "Nice"}, [][3]any{
		{"Paris", "Lyon", 465},
		{"Lyon", "Nice", 470},
	})

	res, err := dijkstra.Dijkstra(g, dijkstra.WithSource("lyon"), dijkstra.WithTarget("nice"))
	require.NoError(t, err)
	assert.Equal(t, "LYON", res.Source)
	assert.Equal(t, int64(470), res.Dist["NICE"])
	assert.False(t, res.Reachable("PARIS"))
}

// ------------------------------------------------------------------------
// 3. Early exit, idempotence, tracing
// ------------------------------------------------------------------------

func TestDijkstra_EarlyExitEquivalence(t *testing.T) {
	// Three edge-disjoint routes from S to T with different lengths.
	g := buildGraph(t, []string{"S", "A", "B", "C", "X", "T"}, [][3]any{
		{"S", "A", 4}, {"A", "T", 4},
		{"S", "B", 2}, {"B", "T", 7},
		{"S", "C", 1}, {"C", "T", 9},
		{"T", "X", 1},
	})

	early, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	full, err := dijkstra.Dijkstra(g, dijkstra.WithoutEarlyExit())
	require.NoError(t, err)

	assert.Equal(t, int64(8), early.Dist["T"])
	assert.Equal(t, full.Dist["T"], early.Dist["T"])
	assert.Equal(t, full.Prev["T"], early.Prev["T"])
	assert.LessOrEqual(t, early.Settled, full.Settled)
	assert.Equal(t, int64(9), full.Dist["X"])

	assert.True(t, early.EarlyExit)
	assert.True(t, early.Final("T"))
	assert.True(t, early.Final("S"))
	assert.False(t, early.Final("X"))
	assert.True(t, full.Final("X"))
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][3]any{
		{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1},
	})

	first, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g)
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Prev, second.Prev)
	// Ties on distance resolve by city id: B is extracted before C.
	assert.Equal(t, "B", first.Prev["D"])
}

func TestDijkstra_LoggerTracesRelaxations(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][3]any{{"A", "B", 5}})
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dijkstra.Dijkstra(g, dijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dijkstra: relax")
	assert.Contains(t, buf.String(), "to=B")
}

// ------------------------------------------------------------------------
// 4. Correctness against exhaustive enumeration
// ------------------------------------------------------------------------

// bruteForce returns the minimum simple-path distance from src to every city
// by depth-first enumeration. Fine for graphs of a handful of vertices.
func bruteForce(g *core.Graph, src string) map[string]int64 {
	best := map[string]int64{}
	onPath := map[string]bool{}
	var walk func(u string, d int64)
	walk = func(u string, d int64) {
		if cur, ok := best[u]; !ok || d < cur {
			best[u] = d
		}
		onPath[u] = true
		for _, e := range g.Connections(u) {
			if !onPath[e.To] {
				walk(e.To, d+e.Distance)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		n := 2 + rng.Intn(6)
		cities := make([]string, n)
		for i := range cities {
			cities[i] = fmt.Sprintf("C%d", i)
		}
		g := core.NewGraph()
		for _, c := range cities {
			require.NoError(t, g.AddCity(c))
		}
		for i := 0; i < n*2; i++ {
			from, to := cities[rng.Intn(n)], cities[rng.Intn(n)]
			require.NoError(t, g.AddConnection(from, to, int64(rng.Intn(20))))
		}
		g.SetStartingPoint(cities[0])
		g.SetDestination(cities[n-1])

		res, err := dijkstra.Dijkstra(g, dijkstra.WithoutEarlyExit())
		require.NoError(t, err)

		want := bruteForce(g, "C0")
		for _, c := range cities {
			wd, reachable := want[c]
			if !reachable {
				assert.False(t, res.Reachable(c), "round %d: %s should be unreachable", round, c)
				continue
			}
			got, ok := res.DistanceTo(c)
			require.True(t, ok, "round %d: %s should be reachable", round, c)
			assert.Equal(t, wd, got, "round %d: dist[%s]", round, c)
		}

		early, err := dijkstra.Dijkstra(g)
		require.NoError(t, err)
		assert.Equal(t, res.Dist[cities[n-1]], early.Dist[cities[n-1]], "round %d: early exit changed target distance", round)
	}
}

func TestDijkstra_ErrorsAreWrapped(t *testing.T) {
	_, err := dijkstra.Dijkstra(core.NewGraph())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidGraph))
	assert.Contains(t, err.Error(), "starting point is missing")
}
