// Package kmeans partitions points in an n-dimensional real vector space into
// k clusters with Lloyd's algorithm.
//
// # Quick Start
//
//	points := []kmeans.Point{
//	    {1, 2, -3}, {3, 4, 0}, {5, 6, 1}, {7, 3, -1},
//	}
//	res, err := kmeans.Run(points, 2, 100, kmeans.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	for i, c := range res.Clusters {
//	    fmt.Println(i, c.Centroid, c.Members)
//	}
//
// # Algorithm
//
// A run seeds k centroids by sampling k input points uniformly with
// replacement, assigns every point to its nearest centroid (Euclidean
// distance, lowest cluster index wins ties) and then alternates between
// moving each non-empty centroid to the mean of its members and reassigning.
// A cluster that receives no members keeps its centroid unchanged. The run
// stops when no non-empty centroid moves by more than Tolerance, or after
// maxIterations update cycles. Both are successful terminations.
//
// # Reproducibility
//
// Randomness is only used for seeding and always comes from an explicit
// source: WithSeed or WithRand. Two runs with the same source state and input
// produce identical centroids and memberships. Without either option each run
// draws a seed from the clock; the seed is logged at debug level.
//
// # Errors
//
//   - ErrEmptyInput: no points
//   - ErrInvalidK: k < 1 or k > number of points
//   - *ErrDimensionMismatch: points of differing dimension
//   - *ErrInvalidDimension: points without coordinates
//   - ErrInvalidMaxIterations: negative iteration cap
//
// Cluster labels carry no meaning beyond identifying a group; compare results
// up to a permutation of cluster indices.
package kmeans
