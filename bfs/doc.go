// Package bfs provides bounded, multi-source breadth-first neighbor
// expansion over a localgraph.Graph, returning unweighted hop distances,
// parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a set of sources,
//     all seeded at depth 0 simultaneously.
//   - Returns a Result containing Order (visit sequence), Depth (node ->
//     hop distance), and Parent (node -> predecessor in the walk tree).
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     OnVisit (may abort the walk by returning an error).
//   - Allows filtering individual edges via WithFilterNeighbor.
//   - Honors MaxDepth, defaulting to 2.
//
// Why
//
//   - Package online's FastRemove needs, after removing a node, the set of
//     existing nodes within a small number of hops (3) of the removed node
//     and of the nodes that referenced it, as replacement candidates.
//
// A neighbor reference to a node.NodeID not present in the given Graph (a
// sibling-partition edge) is never expanded — the walk stays within one
// partition's subgraph.
package bfs
