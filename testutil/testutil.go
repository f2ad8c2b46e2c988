package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/kmeans/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies kmeans.RandSource.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dimensions int) []model.Point {
	return r.UniformRangePoints(num, dimensions, 0, 1)
}

// UniformRangePoints generates random points with coordinates in range [minVal, maxVal).
func (r *RNG) UniformRangePoints(num, dimensions int, minVal, maxVal float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dimensions)
	points := make([]model.Point, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates points with coordinates from a standard normal distribution.
func (r *RNG) GaussianPoints(num, dimensions int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([]model.Point, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points scattered around well separated centers.
// Point i belongs to group i%groups; the group is returned in labels.
// spread is the standard deviation of the Gaussian noise around each center.
func (r *RNG) ClusteredPoints(num, dim, groups int, spread float64) (points []model.Point, labels []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Centers sit on the axes, 10 units apart.
	centers := make([]model.Point, groups)
	for g := range groups {
		c := make(model.Point, dim)
		c[g%dim] = 10 * float64(g/dim+1)
		if g >= dim {
			c[(g+1)%dim] = -10 * float64(g/dim)
		}
		centers[g] = c
	}

	data := make([]float64, num*dim)
	points = make([]model.Point, num)
	labels = make([]int, num)

	for i := range num {
		g := i % groups
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range dim {
			p[j] = centers[g][j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		labels[i] = g
	}

	return points, labels
}

// NearestCentroid returns the index of the centroid closest to p by brute
// force, preferring the lowest index on ties. Returns -1 if centroids is empty.
func NearestCentroid(p model.Point, centroids []model.Point) int {
	best := -1
	minDist := math.Inf(1)
	for i, c := range centroids {
		var sum float64
		for j := range c {
			d := c[j] - p[j]
			sum += d * d
		}
		if d := math.Sqrt(sum); best < 0 || d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}

// Groups converts a label slice into its groups of point indices, ignoring
// the label values themselves. Groups are sorted by their smallest index.
func Groups(labels []int) [][]int {
	byLabel := make(map[int][]int)
	order := make([]int, 0)
	for i, l := range labels {
		if _, ok := byLabel[l]; !ok {
			order = append(order, l)
		}
		byLabel[l] = append(byLabel[l], i)
	}

	groups := make([][]int, 0, len(order))
	for _, l := range order {
		groups = append(groups, byLabel[l])
	}
	return groups
}

// SamePartition reports whether two labelings group the points identically,
// regardless of which label each group carries.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ga, gb := Groups(a), Groups(b)
	if len(ga) != len(gb) {
		return false
	}
	for i := range ga {
		if !slices.Equal(ga[i], gb[i]) {
			return false
		}
	}
	return true
}
