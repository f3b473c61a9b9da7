// Package partition implements the balanced k-medoids graph partitioner:
// iterative medoid refinement with a capacity-constrained, greedy
// assignment pass, followed by a shuffle and a medoid recomputation step
// driven by strongly connected components and Dijkstra eccentricity over
// each partition's own subgraph.
//
// The assignment pass walks the whole input in order with one running
// count per partition and a single capacity of imbalance·N/partitions (not
// rounded); it does not split the input into shards with separate counts
// and capacities.
//
// The assignment scoring function (AssignOne) is shared with package
// approxsearch's online-insertion path, since both need exactly the same
// "capacity-discounted similarity, argmax with random tie-break" rule: the
// same computation with a different source of counts (Run's running tally
// over its input vs. the live global partition sizes).
package partition
