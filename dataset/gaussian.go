package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nnshard/node"
)

// overlapSpacing maps an Overlap level to the distance between adjacent
// cluster centers, expressed as a multiple of the per-cluster standard
// deviation: low overlap spreads centers far apart relative to spread,
// high overlap packs them close enough that clusters routinely interleave.
func overlapSpacing(o Overlap) float64 {
	switch o {
	case HighOverlap:
		return 1.5
	case MediumOverlap:
		return 4.0
	default: // LowOverlap
		return 10.0
	}
}

// Gaussian draws size points in dims dimensions from clusters Gaussian
// mixture components. Cluster centers are placed along the diagonal of
// R^dims, spaced by overlapSpacing(overlap) standard deviations, so the
// overlap level controls how cleanly a partitioner or search can separate
// them. Points are assigned round-robin to clusters in ID order, and seed
// makes the draw reproducible.
func Gaussian(dims, clusters, size int, overlap Overlap, seed int64, opts ...Option) []node.Node[[]float64] {
	cfg := newConfig(seed)
	for _, opt := range opts {
		opt(cfg)
	}

	spacing := overlapSpacing(overlap) * cfg.std

	centers := make([][]float64, clusters)
	for c := 0; c < clusters; c++ {
		center := make([]float64, dims)
		for d := 0; d < dims; d++ {
			center[d] = float64(c) * spacing
		}
		centers[c] = center
	}

	out := make([]node.Node[[]float64], size)
	for i := 0; i < size; i++ {
		c := i % clusters
		v := make([]float64, dims)
		for d := 0; d < dims; d++ {
			v[d] = centers[c][d] + cfg.rng.NormFloat64()*cfg.std
		}
		id := node.NodeID(fmt.Sprintf("g%d", i))
		out[i] = node.New(id, v)
	}

	return out
}

// euclidean returns the Euclidean distance between a and b. It has no
// caller in this module; the package's tests live in package dataset_test
// and compute their own distance.
func euclidean(a, b []float64) float64 {
	var sumSq float64
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}

	return math.Sqrt(sumSq)
}
