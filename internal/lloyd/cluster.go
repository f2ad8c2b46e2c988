package lloyd

import (
	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// Cluster is the mutable per-run state of one cluster: its centroid and the
// points assigned to it in the current pass.
type Cluster struct {
	centroid model.Point
	members  []model.Point
	indices  []int
	// ids mirrors indices as a set for partition checks.
	ids *roaring.Bitmap
}

// NewCluster creates an empty cluster whose centroid is a copy of centroid.
func NewCluster(centroid model.Point) *Cluster {
	return &Cluster{
		centroid: centroid.Clone(),
		ids:      roaring.New(),
	}
}

// Centroid returns the current centroid. The slice is owned by the cluster.
func (c *Cluster) Centroid() model.Point { return c.centroid }

// Members returns the points assigned in the current pass.
func (c *Cluster) Members() []model.Point { return c.members }

// Indices returns the input positions of Members.
func (c *Cluster) Indices() []int { return c.indices }

// Len returns the number of members.
func (c *Cluster) Len() int { return len(c.members) }

// Empty reports whether the cluster has no members in the current pass.
func (c *Cluster) Empty() bool { return len(c.members) == 0 }

// Add appends the input point at position idx to the membership.
func (c *Cluster) Add(idx int, p model.Point) {
	c.members = append(c.members, p)
	c.indices = append(c.indices, idx)
	c.ids.Add(uint32(idx))
}

// Clear drops all members, keeping the centroid.
func (c *Cluster) Clear() {
	c.members = c.members[:0]
	c.indices = c.indices[:0]
	c.ids.Clear()
}

// Update moves the centroid to the coordinate-wise mean of the members and
// returns how far it moved. An empty cluster keeps its centroid untouched and
// reports ok=false.
func (c *Cluster) Update() (shift float64, ok bool, err error) {
	if len(c.members) == 0 {
		return 0, false, nil
	}

	mean := make(model.Point, len(c.centroid))
	for i, p := range c.members {
		if len(p) != len(mean) {
			return 0, true, &ErrDimensionMismatch{Index: c.indices[i], Expected: len(mean), Actual: len(p)}
		}
		floats.Add(mean, p)
	}
	floats.Scale(1/float64(len(c.members)), mean)

	shift, err = distance.Euclidean(c.centroid, mean)
	if err != nil {
		return 0, true, err
	}
	c.centroid = mean
	return shift, true, nil
}

// snapshot copies the cluster into a caller-owned model.Cluster.
func (c *Cluster) snapshot() model.Cluster {
	out := model.Cluster{
		Centroid: c.centroid.Clone(),
		Members:  make([]model.Point, len(c.members)),
		Indices:  make([]int, len(c.indices)),
	}
	for i, p := range c.members {
		out.Members[i] = p.Clone()
	}
	copy(out.Indices, c.indices)
	return out
}
