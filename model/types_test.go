package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointClone(t *testing.T) {
	p := Point{1, 2, 3}
	c := p.Clone()
	assert.True(t, p.Equal(c))

	c[0] = 42
	assert.Equal(t, 1.0, p[0], "clone must not share memory")

	var nilPoint Point
	assert.Nil(t, nilPoint.Clone())
}

func TestPointEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"Identical", Point{1, 2}, Point{1, 2}, true},
		{"Different", Point{1, 2}, Point{1, 3}, false},
		{"DimensionMismatch", Point{1, 2}, Point{1, 2, 0}, false},
		{"Empty", Point{}, Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1, 2, -3)", Point{1, 2, -3}.String())
	assert.Equal(t, "(0.5)", Point{0.5}.String())
	assert.Equal(t, "()", Point{}.String())
}

func TestCluster(t *testing.T) {
	c := Cluster{Centroid: Point{0, 0}}
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Len())

	c.Members = append(c.Members, Point{1, 1})
	c.Indices = append(c.Indices, 3)
	assert.False(t, c.Empty())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "Cluster(centroid=(0, 0), members=1)", c.String())
}
