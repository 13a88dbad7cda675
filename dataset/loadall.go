package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadAll loads paths with a default Loader.
func LoadAll(ctx context.Context, paths []string, parallel int) ([]Dataset, error) {
	return NewLoader().LoadAll(ctx, paths, parallel)
}

// LoadAll loads every path concurrently, running at most parallel loads
// at once. Each file is still decoded in order by a single load; the
// returned slice matches the order of paths. The first failure cancels
// the remaining loads and is returned alone, with no partial results.
func (l *Loader) LoadAll(ctx context.Context, paths []string, parallel int) ([]Dataset, error) {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]Dataset, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			ds, err := l.Load(ctx, path)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
