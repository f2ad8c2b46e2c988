package kmeans

import (
	"math/rand"
	"time"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/lloyd"
	"github.com/hupe1980/kmeans/model"
)

// Point is a fixed-dimension ordered sequence of real coordinates.
type Point = model.Point

// Cluster is a centroid with the points assigned to it.
type Cluster = model.Cluster

// RandSource picks the initial centroids. *rand.Rand satisfies it.
type RandSource = lloyd.Rand

// Tolerance is the maximum per-cluster centroid movement for a run to count
// as converged.
const Tolerance = lloyd.Tolerance

// Result is the outcome of a Run. It is owned by the caller.
type Result struct {
	// Clusters holds exactly k clusters.
	Clusters []Cluster `json:"clusters"`
	// Iterations is the number of update/check cycles performed.
	Iterations int `json:"iterations"`
	// Converged reports whether the run stopped because no centroid moved
	// by more than Tolerance, as opposed to reaching maxIterations.
	Converged bool `json:"converged"`
}

// Centroids returns the centroid of every cluster, in cluster order.
func (r *Result) Centroids() []Point {
	out := make([]Point, len(r.Clusters))
	for i, c := range r.Clusters {
		out[i] = c.Centroid
	}
	return out
}

// Labels returns the cluster index of every input point.
func (r *Result) Labels() []int {
	n := 0
	for _, c := range r.Clusters {
		n += len(c.Indices)
	}
	labels := make([]int, n)
	for ci, c := range r.Clusters {
		for _, idx := range c.Indices {
			labels[idx] = ci
		}
	}
	return labels
}

// Inertia returns the sum of squared distances between every point and the
// centroid of its cluster.
func (r *Result) Inertia() float64 {
	var sum float64
	for _, c := range r.Clusters {
		for _, p := range c.Members {
			d, err := distance.SquaredEuclidean(c.Centroid, p)
			if err != nil {
				continue
			}
			sum += d
		}
	}
	return sum
}

// Run clusters points into k groups using Lloyd's algorithm.
//
// Preconditions: len(points) > 0, every point has the same non-zero
// dimension, 1 <= k <= len(points) and maxIterations >= 0. maxIterations
// bounds the number of update/check cycles; with 0 the result is the initial
// assignment against the sampled centroids.
//
// The input points are never modified; the result holds copies.
func Run(points []Point, k, maxIterations int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	if o.rand == nil {
		o.seed = time.Now().UnixNano()
		o.rand = rand.New(rand.NewSource(o.seed))
		o.seeded = true
	}

	dim := 0
	if len(points) > 0 {
		dim = points[0].Dim()
	}
	logger := o.logger.WithK(k).WithCount(len(points)).WithDimension(dim)
	logger.LogRun(maxIterations, o.seed, o.seeded)

	start := time.Now()
	out, err := lloyd.Train(points, lloyd.Config{
		K:             k,
		MaxIterations: maxIterations,
		Rand:          o.rand,
		OnIteration: func(it lloyd.Iteration) {
			logger.LogIteration(it.N, it.Shift, it.Empty)
			o.metricsCollector.RecordIteration(it.N, it.Shift)
		},
	})
	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordRun(len(points), k, 0, false, time.Since(start), err)
		logger.LogDone(0, false, err)
		return nil, err
	}

	o.metricsCollector.RecordRun(len(points), k, out.Iterations, out.Converged, time.Since(start), nil)
	logger.LogDone(out.Iterations, out.Converged, nil)

	return &Result{
		Clusters:   out.Clusters,
		Iterations: out.Iterations,
		Converged:  out.Converged,
	}, nil
}
