package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
)

func TestRenderText(t *testing.T) {
	res := &kmeans.Result{
		Clusters: []kmeans.Cluster{
			{Centroid: kmeans.Point{2, 3, -1.5}, Members: []kmeans.Point{{1, 2, -3}, {3, 4, 0}}},
			{Centroid: kmeans.Point{6, 4.5, 0}, Members: []kmeans.Point{{5, 6, 1}, {7, 3, -1}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, res))

	want := `Center of cluster 0: (2, 3, -1.5)
Points in cluster 0:
(1, 2, -3)
(3, 4, 0)
Center of cluster 1: (6, 4.5, 0)
Points in cluster 1:
(5, 6, 1)
(7, 3, -1)
`
	assert.Equal(t, want, buf.String())
}

func TestRun(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"-seed", "42"}, &stdout, &stderr))

		out := stdout.String()
		assert.Equal(t, 2, strings.Count(out, "Center of cluster"))
		assert.Equal(t, 4+4, strings.Count(out, "\n"))
		assert.Empty(t, stderr.String())
	})

	t.Run("Deterministic", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, run([]string{"-seed", "9"}, &a, &bytes.Buffer{}))
		require.NoError(t, run([]string{"-seed", "9"}, &b, &bytes.Buffer{}))
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("JSON", func(t *testing.T) {
		for _, name := range []string{"json", "go-json"} {
			var stdout bytes.Buffer
			require.NoError(t, run([]string{"-seed", "42", "-format", "json", "-codec", name}, &stdout, &bytes.Buffer{}))

			var res kmeans.Result
			require.NoError(t, codec.JSON{}.Unmarshal(stdout.Bytes(), &res))
			assert.Len(t, res.Clusters, 2)
			assert.True(t, res.Converged)
			assert.Len(t, res.Labels(), 4)
		}
	})

	t.Run("Verbose", func(t *testing.T) {
		var stderr bytes.Buffer
		require.NoError(t, run([]string{"-seed", "1", "-v"}, &bytes.Buffer{}, &stderr))
		assert.Contains(t, stderr.String(), "run started")
		assert.Contains(t, stderr.String(), "run completed")
	})

	t.Run("InvalidK", func(t *testing.T) {
		err := run([]string{"-k", "5"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, kmeans.ErrInvalidK)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		err := run([]string{"-format", "yaml"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.EqualError(t, err, `unknown format "yaml"`)
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		err := run([]string{"-format", "json", "-codec", "xml"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.EqualError(t, err, `unknown codec "xml"`)
	})

	t.Run("Help", func(t *testing.T) {
		err := run([]string{"-h"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}
