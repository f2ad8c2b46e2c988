// Command kmeans clusters a small sample dataset and prints the result.
//
// Usage:
//
//	kmeans [-k 2] [-max-iter 100] [-seed 42] [-format text|json] [-codec go-json|json] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
)

// samplePoints is the built-in dataset.
var samplePoints = []kmeans.Point{
	{1, 2, -3},
	{3, 4, 0},
	{5, 6, 1},
	{7, 3, -1},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	fs.SetOutput(stderr)

	k := fs.Int("k", 2, "number of clusters")
	maxIter := fs.Int("max-iter", 100, "maximum number of update cycles")
	seed := fs.Int64("seed", 0, "random seed (0 seeds from the clock)")
	format := fs.String("format", "text", "output format: text or json")
	codecName := fs.String("codec", codec.Default.Name(), "codec for json output: go-json or json")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []kmeans.Option{}
	if *seed != 0 {
		opts = append(opts, kmeans.WithSeed(*seed))
	}
	if *verbose {
		opts = append(opts, kmeans.WithLogger(kmeans.NewLogger(
			slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	res, err := kmeans.Run(samplePoints, *k, *maxIter, opts...)
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		return renderText(stdout, res)
	case "json":
		c, ok := codec.ByName(*codecName)
		if !ok {
			return fmt.Errorf("unknown codec %q", *codecName)
		}
		return renderJSON(stdout, c, res)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
