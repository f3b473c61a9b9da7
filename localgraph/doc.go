// Package localgraph implements Graph, the in-memory mapping from node.NodeID
// to a bounded node.NeighborList that backs one partition's worth of the
// k-NN graph.
//
// Graph is intentionally thin: Put, Get, Has, Delete, and iteration, guarded
// by a single sync.RWMutex (mirroring the teacher's muVert/muEdgeAdj split,
// collapsed here to one lock since there is a single map rather than a
// separate vertex and edge catalog). The heavier algorithms that operate
// over a Graph — strongly connected components (package scc), Dijkstra
// eccentricity (package dijkstra), bounded neighbor expansion (package bfs)
// — live in their own packages, the same way the teacher's core.Graph is
// consumed by standalone dijkstra/bfs/dfs packages rather than implementing
// traversal itself.
//
// A NeighborList entry may reference a NodeID that is not itself a key of
// this Graph: that is the expected shape of a partition boundary (the
// neighbor lives in a sibling partition) and every algorithm here skips such
// references rather than treating them as an error.
package localgraph
