package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/route"
	"github.com/katalvlaran/roadpath/strategy"
)

const threeCities = `/start-cities
3
a
b
c
/start-connections
3
A B 10
B C 10
A C 30
`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_Dijkstra(t *testing.T) {
	out, errOut, err := execute(t, "dijkstra", "-i", writeInput(t, threeCities))
	require.NoError(t, err)
	assert.Equal(t, "Shortest Path: A -> B -> C, Distance: 20 km\n", out)
	assert.NotContains(t, errOut, "Warning")
}

func TestRoot_MissingStrategyWarns(t *testing.T) {
	out, errOut, err := execute(t, "--input", writeInput(t, threeCities))
	require.NoError(t, err)
	assert.Contains(t, out, "Distance: 20 km")
	assert.Contains(t, errOut, "Warning: no path-finding strategy given, using Dijkstra")
}

func TestRoot_UnknownStrategyFallsBack(t *testing.T) {
	out, errOut, err := execute(t, "Floyd", "-i", writeInput(t, threeCities))
	require.NoError(t, err)
	assert.Contains(t, out, "A -> B -> C")
	assert.Contains(t, errOut, `unknown path-finding strategy "Floyd"`)
}

func TestRoot_UnsupportedStrategy(t *testing.T) {
	for _, name := range []string{"Bellman-Ford", "a*"} {
		out, errOut, err := execute(t, name, "-i", writeInput(t, threeCities))
		require.ErrorIs(t, err, strategy.ErrNotImplemented, name)
		assert.Empty(t, out, name)
		assert.Contains(t, errOut, "is unsupported", name)
	}
}

func TestRoot_UnreachableDestination(t *testing.T) {
	body := "/start-cities\n3\nA\nB\nC\n/start-connections\n1\nA B 5\n"
	out, _, err := execute(t, "Dijkstra", "-i", writeInput(t, body))
	require.ErrorIs(t, err, route.ErrNoPath)
	assert.Equal(t, "No path found from A to C\n", out)
}

func TestRoot_InvalidGraph(t *testing.T) {
	out, _, err := execute(t, "Dijkstra", "-i", writeInput(t, "/start-connections\n0\n"))
	require.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.Empty(t, out)
}

func TestRoot_MissingFile(t *testing.T) {
	_, _, err := execute(t, "-i", filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoot_ConfigAndFlags(t *testing.T) {
	in := writeInput(t, "/start-cities\n2\nA\nB\n/start-connections\n1\nB A 4\n")
	cfgPath := filepath.Join(t.TempDir(), "roadpath.yaml")
	body := "input: " + in + "\nstrategy: Dijkstra\nunit: mi\ndirected: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	// Directed from config: B→A only, so A cannot reach B.
	out, _, err := execute(t, "-c", cfgPath)
	require.ErrorIs(t, err, route.ErrNoPath)
	assert.Equal(t, "No path found from A to B\n", out)

	// Flag overrides config; the road becomes two-way.
	out, errOut, err := execute(t, "-c", cfgPath, "--directed=false", "--no-early-exit")
	require.NoError(t, err)
	assert.Equal(t, "Shortest Path: A -> B, Distance: 4 mi\n", out)
	assert.NotContains(t, errOut, "Warning", "strategy comes from the config file")
}

func TestRoot_DebugLogging(t *testing.T) {
	_, errOut, err := execute(t, "Dijkstra", "-i", writeInput(t, threeCities), "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "run_id=")
	assert.Contains(t, errOut, "dijkstra: relax")
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "-i", writeInput(t, threeCities), "--log-level", "loud")
	require.ErrorContains(t, err, "invalid config")
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "Dijkstra", "A*")
	require.Error(t, err)
}
