package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Point is a fixed-dimension ordered sequence of real coordinates.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that shares no memory with it.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// Equal reports whether p and o have the same dimension and identical coordinates.
func (p Point) Equal(o Point) bool {
	return slices.Equal(p, o)
}

// String formats the point as "(x, y, z)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Cluster is one group of a clustering result.
type Cluster struct {
	// Centroid is the coordinate-wise mean of Members, or the previous
	// centroid if the cluster received no members in the final pass.
	Centroid Point `json:"centroid"`
	// Members are the points assigned to this cluster in the final pass.
	Members []Point `json:"members"`
	// Indices are the positions of Members in the input slice, in the same order.
	Indices []int `json:"indices"`
}

// Len returns the number of members.
func (c Cluster) Len() int { return len(c.Members) }

// Empty reports whether the cluster has no members.
func (c Cluster) Empty() bool { return len(c.Members) == 0 }

// String returns a short description of the cluster.
func (c Cluster) String() string {
	return fmt.Sprintf("Cluster(centroid=%s, members=%d)", c.Centroid, len(c.Members))
}
