package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

// Batch runs several levels concurrently. Runners hold per-run metric
// state, so each level gets its own from newRunner.
type Batch struct {
	newRunner func() *Runner
	limit     int
}

func NewBatch(newRunner func() *Runner, limit int) *Batch {
	return &Batch{newRunner: newRunner, limit: limit}
}

// Run returns results in the order of levels. The first error cancels the
// remaining runs.
func (b *Batch) Run(ctx context.Context, levels []dynamo.Level, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(levels))

	g, ctx := errgroup.WithContext(ctx)
	if b.limit > 0 {
		g.SetLimit(b.limit)
	}
	for i, level := range levels {
		i, level := i, level
		g.Go(func() error {
			res, err := b.newRunner().Run(ctx, level, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
