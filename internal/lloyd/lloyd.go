package lloyd

import (
	"github.com/hupe1980/kmeans/model"
)

// Tolerance is the maximum centroid movement, per non-empty cluster, for a
// run to count as converged.
const Tolerance = 1e-9

// Rand is the random source used to pick initial centroids.
// *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0,n).
	Intn(n int) int
}

// Iteration describes one completed UPDATE/CHECK cycle.
type Iteration struct {
	// N is the 1-based cycle number.
	N int
	// Shift is the largest centroid movement among non-empty clusters.
	Shift float64
	// Empty is the number of clusters without members in the pass.
	Empty int
	// Converged reports whether Shift is within Tolerance.
	Converged bool
}

// Config controls a training run.
type Config struct {
	// K is the number of clusters, 1 <= K <= len(points).
	K int
	// MaxIterations bounds the number of UPDATE/CHECK cycles.
	MaxIterations int
	// Rand picks the initial centroids.
	Rand Rand
	// OnIteration, if set, is called after every UPDATE/CHECK cycle.
	OnIteration func(Iteration)
}

// Outcome is the result of a training run. The clusters are owned by the caller.
type Outcome struct {
	Clusters   []model.Cluster
	Iterations int
	Converged  bool
}

// State holds the clusters of a single run.
type State struct {
	points   []model.Point
	clusters []*Cluster
	dim      int
}

// Validate checks the input set and k.
func Validate(points []model.Point, k int) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}
	dim := len(points[0])
	if dim == 0 {
		return &ErrInvalidDimension{Dimension: dim}
	}
	for i, p := range points {
		if len(p) != dim {
			return &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
	}
	if k <= 0 || k > len(points) {
		return ErrInvalidK
	}
	return nil
}

// Init validates the input and creates k clusters whose centroids are copies
// of points sampled uniformly with replacement. Distinct clusters may start
// from the same point.
func Init(points []model.Point, k int, rng Rand) (*State, error) {
	if err := Validate(points, k); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	clusters := make([]*Cluster, k)
	for i := range clusters {
		clusters[i] = NewCluster(points[rng.Intn(len(points))])
	}

	return &State{
		points:   points,
		clusters: clusters,
		dim:      len(points[0]),
	}, nil
}

// Clusters returns the live clusters of the run.
func (s *State) Clusters() []*Cluster { return s.clusters }

// Dim returns the dimension of the run.
func (s *State) Dim() int { return s.dim }

// Assign places every input point into its nearest cluster and verifies that
// the resulting membership is a partition of the input.
func (s *State) Assign() error {
	for i, p := range s.points {
		idx, err := nearest(s.clusters, p, i)
		if err != nil {
			return err
		}
		s.clusters[idx].Add(i, p)
	}
	return checkPartition(s.clusters, len(s.points))
}

// Clear empties every cluster's membership.
func (s *State) Clear() {
	for _, c := range s.clusters {
		c.Clear()
	}
}

// Update recomputes all non-empty centroids and runs the convergence check.
// Empty clusters are excluded from the check.
func (s *State) Update() (Iteration, error) {
	var it Iteration
	for _, c := range s.clusters {
		shift, ok, err := c.Update()
		if err != nil {
			return it, err
		}
		if !ok {
			it.Empty++
			continue
		}
		if shift > it.Shift {
			it.Shift = shift
		}
	}
	it.Converged = it.Shift <= Tolerance
	return it, nil
}

// Result copies the clusters out of the run.
func (s *State) Result() []model.Cluster {
	out := make([]model.Cluster, len(s.clusters))
	for i, c := range s.clusters {
		out[i] = c.snapshot()
	}
	return out
}

// Train runs Lloyd's algorithm on points until convergence or until
// cfg.MaxIterations UPDATE/CHECK cycles have been performed.
func Train(points []model.Point, cfg Config) (*Outcome, error) {
	if cfg.MaxIterations < 0 {
		return nil, ErrInvalidMaxIterations
	}

	s, err := Init(points, cfg.K, cfg.Rand)
	if err != nil {
		return nil, err
	}
	if err := s.Assign(); err != nil {
		return nil, err
	}

	out := &Outcome{}
	for out.Iterations < cfg.MaxIterations {
		it, err := s.Update()
		if err != nil {
			return nil, err
		}
		out.Iterations++
		it.N = out.Iterations

		if cfg.OnIteration != nil {
			cfg.OnIteration(it)
		}
		if it.Converged {
			out.Converged = true
			break
		}

		s.Clear()
		if err := s.Assign(); err != nil {
			return nil, err
		}
	}

	out.Clusters = s.Result()
	return out, nil
}
