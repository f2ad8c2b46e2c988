// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides a seeded random source, point generators, brute-force ground
// truth for nearest-centroid queries and permutation-invariant comparison of
// cluster partitions.
//
// # Random Points
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 3)          // uniform [0, 1)
//	pts, labels := rng.ClusteredPoints(100, 3, 4, 0.05)
//
// # Ground Truth
//
//	idx := testutil.NearestCentroid(p, centroids)
//
// # Partition Comparison
//
//	same := testutil.SamePartition(labelsA, labelsB)
package testutil
