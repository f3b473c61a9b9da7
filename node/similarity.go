package node

// Similarity computes how alike two values are: higher means more similar.
// It is not required to be symmetric (Similarity(a, b) may differ from
// Similarity(b, a)) or to satisfy the triangle inequality — the partitioner
// and search only ever call it and compare the resulting float64s, never
// assume metric structure. Implementations must be pure: the same pair of
// values must always produce the same score, since every concurrent shard
// in package substrate calls the same Similarity value from multiple
// goroutines without synchronization.
type Similarity[T any] func(a, b T) float64
