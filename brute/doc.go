// Package brute implements the exact O(N²/P) nearest-neighbor baseline:
// every node is compared against every other node, sharded trivially over
// substrate.Collection so it exercises the same partitioned-collection
// machinery the approximate path does. It exists only as a correctness
// baseline for tests and small inputs — no partitioning, no search budget,
// no online maintenance.
package brute
