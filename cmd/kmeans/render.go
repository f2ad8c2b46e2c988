package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
)

// renderText prints every cluster's center followed by its points.
func renderText(w io.Writer, res *kmeans.Result) error {
	bw := bufio.NewWriter(w)
	for i, c := range res.Clusters {
		fmt.Fprintf(bw, "Center of cluster %d: %s\n", i, c.Centroid)
		fmt.Fprintf(bw, "Points in cluster %d:\n", i)
		for _, p := range c.Members {
			fmt.Fprintln(bw, p)
		}
	}
	return bw.Flush()
}

func renderJSON(w io.Writer, c codec.Codec, res *kmeans.Result) error {
	b, err := c.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result with %s: %w", c.Name(), err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
