package lloyd

import (
	"errors"
	"math"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/model"
)

// Nearest returns the index of the cluster whose centroid is closest to p.
// On exact ties the lowest index wins.
func Nearest(clusters []*Cluster, p model.Point) (int, error) {
	return nearest(clusters, p, -1)
}

// nearest is Nearest with the input position of p used for error reporting.
func nearest(clusters []*Cluster, p model.Point, idx int) (int, error) {
	if len(clusters) == 0 {
		return -1, ErrInvalidK
	}

	best := 0
	minDist := math.Inf(1)

	for i, c := range clusters {
		d, err := distance.Euclidean(c.centroid, p)
		if err != nil {
			return -1, wrapDistanceError(idx, err)
		}
		if d < minDist {
			minDist = d
			best = i
		}
	}

	return best, nil
}

func wrapDistanceError(index int, err error) error {
	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Index: index, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	return err
}
