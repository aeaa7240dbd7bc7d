package tilegraph

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilepath/grid"
)

// Query is one start/goal pair for FindPaths.
type Query struct {
	From grid.Point
	To   grid.Point
}

// Result is the outcome of one Query. Path is nil when the goal is
// unreachable or Err is set.
type Result struct {
	Query Query
	Path  *Path
	Err   error
}

// FindPaths answers queries concurrently over g, each with its own
// Pathfinder. Results are returned in query order and every Result carries
// its Query. Per-query failures are reported in Result.Err.
//
// When ctx is cancelled, queries that have not started are not run: their
// Result.Err holds the context error, and FindPaths returns it as well.
// Queries already running finish normally.
//
// workers ≤ 0 uses runtime.NumCPU(). g must not be regenerated while
// FindPaths runs.
func FindPaths(ctx context.Context, g *Graph, queries []Query, workers int) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(queries))
	for i, q := range queries {
		results[i].Query = q
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	scheduled := 0
	for i, q := range queries {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			path, err := g.FindPath(q.From, q.To)
			results[i] = Result{Query: q, Path: path, Err: err}
			return nil
		})
		scheduled++
	}
	waitErr := eg.Wait()

	if err := ctx.Err(); err != nil {
		for i := scheduled; i < len(results); i++ {
			results[i].Err = err
		}
		return results, err
	}

	return results, waitErr
}
