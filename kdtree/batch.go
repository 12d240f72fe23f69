package kdtree

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// NearestAll answers every query in qs, running up to workers of them at once
// (workers <= 0 means no limit). The i-th result is the match for qs[i]. The
// tree must not be modified until NearestAll returns.
func (t *Tree) NearestAll(ctx context.Context, qs []Point, workers int) ([]Point, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	results := make([]Point, len(qs))
	for i, q := range qs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := t.Nearest(q)
			if err != nil {
				return fmt.Errorf("query %d %v: %w", i, q, err)
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
