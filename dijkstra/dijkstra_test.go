package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/nnshard/dijkstra"
	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constSim(a, b int) float64 { return 1 }

func chain(t *testing.T, n int) *localgraph.Graph[int] {
	t.Helper()
	g, err := localgraph.New[int](constSim)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		g.Put(node.New(node.NodeID(rune('a'+i)), i), node.NewNeighborList(2))
	}
	for i := 0; i < n-1; i++ {
		nl, _ := g.Neighbors(node.NodeID(rune('a' + i)))
		nl.Add(node.Neighbor{ID: node.NodeID(rune('a' + i + 1)), Similarity: 1})
	}

	return g
}

func TestDistances_ChainGraph(t *testing.T) {
	g := chain(t, 5)

	dist, err := dijkstra.Distances(g, "a")
	require.NoError(t, err)

	assert.Equal(t, 0, dist["a"])
	assert.Equal(t, 4, dist["e"])
	assert.Equal(t, 1, dist["b"])
}

func TestDistances_RespectsMaxHops(t *testing.T) {
	g := chain(t, 5)

	dist, err := dijkstra.Distances(g, "a", dijkstra.WithMaxHops(2))
	require.NoError(t, err)

	_, reached := dist["d"]
	assert.False(t, reached, "d is 3 hops away, beyond the cap of 2")
	assert.Equal(t, 2, dist["c"])
}

func TestEccentricity_ChainGraphEndpoint(t *testing.T) {
	g := chain(t, 5)

	ecc, err := dijkstra.Eccentricity(g, "a")
	require.NoError(t, err)
	assert.Equal(t, 4, ecc)
}

func TestEccentricity_IsolatedNode(t *testing.T) {
	g, err := localgraph.New[int](constSim)
	require.NoError(t, err)
	g.Put(node.New("solo", 0), node.NewNeighborList(2))

	ecc, err := dijkstra.Eccentricity(g, "solo")
	require.NoError(t, err)
	assert.Equal(t, 0, ecc)
}

func TestDistances_ErrorsOnMissingSource(t *testing.T) {
	g, err := localgraph.New[int](constSim)
	require.NoError(t, err)

	_, err = dijkstra.Distances(g, "missing")
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestDistances_ErrorsOnNilGraph(t *testing.T) {
	_, err := dijkstra.Distances[int](nil, "a")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestWithMaxHops_PanicsOnNegative(t *testing.T) {
	g := chain(t, 2)
	assert.Panics(t, func() { dijkstra.Distances(g, "a", dijkstra.WithMaxHops(-1)) })
}
