package dfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuelroute/core"
	"github.com/katalvlaran/fuelroute/dfs"
)

// buildGraph creates a graph from "from,to" pairs, every road needing 1 fuel.
func buildGraph(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	edges := make(map[core.Leg]float64, len(pairs))
	for _, p := range pairs {
		edges[core.Leg{From: p[0], To: p[1]}] = 1
	}
	g, err := core.BuildGraph(edges)
	require.NoError(t, err)

	return g
}

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	pairs := make([][2]string, 0, n)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, [2]string{"N" + strconv.Itoa(i), "N" + strconv.Itoa(i+1)})
	}

	return buildGraph(t, pairs...)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildGraph(t, [2]string{"A", "B"})
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Chain(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Depth["N3"])
	assert.Equal(t, "N2", res.Parent["N3"])
	_, hasParent := res.Parent["N0"]
	assert.False(t, hasParent, "start vertex should have no parent")
	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, res.PathTo("N3"))
	assert.Equal(t, []string{"N0"}, res.PathTo("N0"))
	assert.Nil(t, res.PathTo("X"))
}

func TestDFS_DirectedOnly(t *testing.T) {
	g := buildChain(t, 3)
	res, err := dfs.DFS(g, "N1")
	require.NoError(t, err)
	assert.False(t, res.Visited["N0"], "roads must not be followed backwards")
	assert.True(t, res.Visited["N2"])
}

func TestDFS_SelfLoopIgnored(t *testing.T) {
	g := buildGraph(t, [2]string{"A", "A"}, [2]string{"A", "B"})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.True(t, res.Visited["B"])
	assert.Equal(t, "A", res.Parent["B"])
	_, loops := res.Parent["A"]
	assert.False(t, loops, "a self-loop must not make A its own parent")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.True(t, res.Visited["N2"])
	assert.False(t, res.Visited["N3"])
}

func TestDFS_Cancelled(t *testing.T) {
	g := buildChain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachable(t *testing.T) {
	g := buildGraph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"D", "A"})

	cases := []struct {
		from, to string
		want     []string
	}{
		{"A", "C", []string{"A", "B", "C"}},
		{"C", "A", nil},
		{"D", "C", []string{"D", "A", "B", "C"}},
		{"A", "Z", nil},
		{"Z", "A", nil},
		{"Z", "Z", []string{"Z"}},
	}
	for _, tc := range cases {
		got, err := dfs.Reachable(g, tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s→%s", tc.from, tc.to)
	}

	_, err := dfs.Reachable(nil, "A", "B")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
