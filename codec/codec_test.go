package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans/model"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)

	assert.Equal(t, "go-json", Default.Name())
}

func TestCodecsAgree(t *testing.T) {
	cluster := model.Cluster{
		Centroid: model.Point{2, 3, -1.5},
		Members:  []model.Point{{1, 2, -3}, {3, 4, 0}},
		Indices:  []int{0, 1},
	}

	std := MustMarshal(JSON{}, cluster)
	fast := MustMarshal(GoJSON{}, cluster)
	assert.JSONEq(t, string(std), string(fast))
	assert.JSONEq(t, `{"centroid":[2,3,-1.5],"members":[[1,2,-3],[3,4,0]],"indices":[0,1]}`, string(std))

	var decoded model.Cluster
	require.NoError(t, JSON{}.Unmarshal(fast, &decoded))
	assert.Equal(t, cluster, decoded)
}

func TestGoJSONAppend(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x="), model.Point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "x=[1,2]", string(out))
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, "[1]", string(MustMarshal(nil, []int{1})))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, math.NaN())
	})
}
