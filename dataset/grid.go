package dataset

import (
	"fmt"

	"github.com/katalvlaran/nnshard/node"
)

// Grid returns rows*cols points laid out at integer (row, column)
// coordinates, in row-major order with "r,c" node IDs — the same fixed,
// documented coordinate ID scheme the teacher's own Grid constructor uses
// for graph vertices, reused here for a point cloud rather than a lattice
// of edges. No RNG: the layout is fully deterministic, useful for
// partition-balance tests that need a known, reproducible structure.
func Grid(rows, cols int) []node.Node[[]float64] {
	out := make([]node.Node[[]float64], 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := node.NodeID(fmt.Sprintf("%d,%d", r, c))
			out = append(out, node.New(id, []float64{float64(r), float64(c)}))
		}
	}

	return out
}
