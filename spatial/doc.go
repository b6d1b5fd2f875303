// Package spatial computes nearest-neighbor spread statistics over
// distance matrices.
//
// Spread is the fraction of one point set lying within a distance
// threshold of another point set; SumOfSpreads integrates spread over a
// swept range of thresholds into a single separability score. Both
// operate on plain rectangular [][]float64 matrices, such as those
// produced by Distances.
package spatial
