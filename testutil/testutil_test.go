package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/kmeans/model"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(p))
	assert.Equal(t, 32, p[0].Dim())
	for _, pt := range p {
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestUniformRangePoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformRangePoints(8, 4, -5, 5)

	assert.Equal(t, 8, len(p))
	for _, pt := range p {
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, -5.0)
			assert.Less(t, v, 5.0)
		}
	}

	// Appending to one point must not clobber its neighbour.
	next := p[1].Clone()
	_ = append(p[0], 99)
	assert.Equal(t, next, p[1])
}

func TestGaussianPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.GaussianPoints(16, 3)

	assert.Equal(t, 16, len(p))
	assert.Equal(t, 3, p[0].Dim())
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	p, labels := rng.ClusteredPoints(100, 3, 5, 0.1)

	assert.Equal(t, 100, len(p))
	assert.Equal(t, 100, len(labels))
	assert.Equal(t, 3, p[0].Dim())
	for i, l := range labels {
		assert.Equal(t, i%5, l)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.UniformPoints(1, 10)
	i1 := rng.Intn(1000)

	rng.Reset()
	p2 := rng.UniformPoints(1, 10)
	i2 := rng.Intn(1000)

	assert.Equal(t, p1, p2)
	assert.Equal(t, i1, i2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestNearestCentroid(t *testing.T) {
	centroids := []model.Point{{0, 0}, {10, 10}, {0, 0}}

	assert.Equal(t, 0, NearestCentroid(model.Point{1, 1}, centroids))
	assert.Equal(t, 1, NearestCentroid(model.Point{9, 9}, centroids))
	// Equidistant from all: lowest index wins.
	assert.Equal(t, 0, NearestCentroid(model.Point{5, 5}, centroids))
	assert.Equal(t, -1, NearestCentroid(model.Point{5, 5}, nil))
}

func TestSamePartition(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"Identical", []int{0, 0, 1, 1}, []int{0, 0, 1, 1}, true},
		{"Permuted", []int{0, 0, 1, 1}, []int{1, 1, 0, 0}, true},
		{"ArbitraryLabels", []int{2, 0, 2, 5}, []int{7, 3, 7, 1}, true},
		{"Different", []int{0, 0, 1, 1}, []int{0, 1, 0, 1}, false},
		{"Merged", []int{0, 0, 1, 1}, []int{0, 0, 0, 0}, false},
		{"LengthMismatch", []int{0, 1}, []int{0, 1, 1}, false},
		{"Empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SamePartition(tt.a, tt.b))
		})
	}
}

func TestGroups(t *testing.T) {
	assert.Equal(t, [][]int{{0, 2}, {1}, {3}}, Groups([]int{4, 1, 4, 0}))
}
