// Package scc decomposes a localgraph.Graph into its strongly connected
// components using Tarjan's algorithm, generalized from gonum's indexed
// graph.Node/graph.Directed formulation to operate directly over
// node.NodeID and a Graph's NeighborLists.
//
// The partitioner (package partition) uses the largest component of a
// partition's subgraph to pick a candidate medoid set: a node outside the
// largest SCC cannot reach, or be reached by, most of its own partition,
// and is a poor center.
package scc
