package partition

import (
	"context"
	"math"

	"github.com/katalvlaran/nnshard/distgraph"
)

// Metrics reports partitioning quality, the same shape dd0wney-graphdb's
// ComputePartitionMetrics produces for its own partition strategies:
// per-shard sizes, cut edges, and a load-balance figure.
type Metrics struct {
	// PartitionSizes is the node count per shard.
	PartitionSizes []int

	// CutEdges is, per shard, how many of that shard's NeighborList entries
	// point at a node living in a different shard.
	CutEdges []int

	// LoadBalance is the population standard deviation of PartitionSizes —
	// 0 means every shard holds exactly the same number of nodes.
	LoadBalance float64

	// CutRatio is the fraction of all NeighborList entries, across every
	// shard, that are cuts.
	CutRatio float64
}

// ComputeMetrics walks dg's edge table once and summarizes partition
// quality. It is a read-only diagnostic: nothing about Run's behavior
// depends on it.
func ComputeMetrics[T any](ctx context.Context, dg *distgraph.DistributedGraph[T]) (*Metrics, error) {
	tuples, err := dg.EdgeTable(ctx)
	if err != nil {
		return nil, err
	}

	p := dg.NumPartitions()
	sizes := make([]int, p)
	cuts := make([]int, p)

	partitionOf := make(map[string]int32, len(tuples))
	for _, t := range tuples {
		partitionOf[string(t.Node.ID)] = t.Node.Partition
	}

	totalEdges := 0
	totalCuts := 0
	for _, t := range tuples {
		part := t.Node.Partition
		if part >= 0 && int(part) < p {
			sizes[part]++
		}
		if t.Neighbors == nil {
			continue
		}
		for _, nb := range t.Neighbors.Neighbors() {
			totalEdges++
			if otherPart, ok := partitionOf[string(nb.ID)]; ok && otherPart != part {
				totalCuts++
				if part >= 0 && int(part) < p {
					cuts[part]++
				}
			}
		}
	}

	mean := float64(len(tuples)) / float64(p)
	var variance float64
	for _, s := range sizes {
		d := float64(s) - mean
		variance += d * d
	}
	variance /= float64(p)

	cutRatio := 0.0
	if totalEdges > 0 {
		cutRatio = float64(totalCuts) / float64(totalEdges)
	}

	return &Metrics{
		PartitionSizes: sizes,
		CutEdges:       cuts,
		LoadBalance:    math.Sqrt(variance),
		CutRatio:       cutRatio,
	}, nil
}
