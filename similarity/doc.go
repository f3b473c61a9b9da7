// Package similarity provides concrete node.Similarity instances for the
// value types the rest of the module's tests and examples exercise:
// Jaro-Winkler for strings and Euclidean-derived similarity for float64
// vectors. Neither is required by the graph machinery itself, which only
// ever calls whatever node.Similarity it is handed.
package similarity
