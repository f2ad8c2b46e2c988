package lloyd

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// checkPartition verifies that the clusters' memberships together cover the
// input positions [0, n) exactly once each.
func checkPartition(clusters []*Cluster, n int) error {
	total := 0
	sets := make([]*roaring.Bitmap, len(clusters))
	for i, c := range clusters {
		total += len(c.indices)
		sets[i] = c.ids
	}
	if total != n {
		return fmt.Errorf("%w: %d memberships for %d points", ErrPartition, total, n)
	}
	if n == 0 {
		return nil
	}

	union := roaring.FastOr(sets...)
	if card := union.GetCardinality(); card != uint64(n) {
		return fmt.Errorf("%w: %d distinct points for %d inputs", ErrPartition, card, n)
	}
	// n distinct values whose maximum is n-1 are exactly [0, n).
	if maxID := union.Maximum(); maxID != uint32(n-1) {
		return fmt.Errorf("%w: point index %d out of range", ErrPartition, maxID)
	}
	return nil
}
