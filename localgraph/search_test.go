package localgraph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nnshard/localgraph"
	"github.com/katalvlaran/nnshard/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func l2sim(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return -math.Sqrt(sum)
}

func buildLine(t *testing.T, n int) *localgraph.Graph[[]float64] {
	t.Helper()
	g, err := localgraph.New[[]float64](l2sim)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		val := []float64{float64(i)}
		nl := node.NewNeighborList(2)
		if i > 0 {
			nl.Add(node.Neighbor{ID: node.NodeID(idOf(i - 1)), Similarity: l2sim(val, []float64{float64(i - 1)})})
		}
		if i < n-1 {
			nl.Add(node.Neighbor{ID: node.NodeID(idOf(i + 1)), Similarity: l2sim(val, []float64{float64(i + 1)})})
		}
		g.Put(node.New(node.NodeID(idOf(i)), val), nl)
	}

	return g
}

func idOf(i int) string {
	return string(rune('a' + i))
}

func TestSearch_FindsNearestAlongChain(t *testing.T) {
	g := buildLine(t, 10)

	opts := localgraph.SearchOptions{MaxSimilarities: 1000, Depth: 20, Expansion: 1}
	result := g.Search([]float64{5.0}, 1, opts)

	require.Equal(t, 1, result.Size())
	got := result.Neighbors()[0]
	assert.True(t, got.ID == "d" || got.ID == "f" || got.ID == "e",
		"expected a close neighbor of 5.0, got %s", got.ID)
}

func TestSearch_EmptyGraphReturnsEmpty(t *testing.T) {
	g, err := localgraph.New[[]float64](l2sim)
	require.NoError(t, err)

	result := g.Search([]float64{0}, 3, localgraph.DefaultSearchOptions())
	assert.Equal(t, 0, result.Size())
}

func TestSearch_RespectsMaxSimilaritiesBudget(t *testing.T) {
	g := buildLine(t, 50)

	opts := localgraph.SearchOptions{MaxSimilarities: 2, Depth: 50, Expansion: 1}
	result := g.Search([]float64{25}, 5, opts)

	// with only 2 similarity calls allowed, we cannot possibly have filled
	// a 5-capacity result from a fresh walk.
	assert.LessOrEqual(t, result.Size(), 2)
}
