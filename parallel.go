package hofn

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MapParallel is TryMap evaluated on up to limit goroutines.
//
// Results keep the order of s. The first failure cancels the context passed
// to the other calls, elements that have not started yet are skipped, and
// the failure is returned as an *ElementError. If ctx is cancelled before
// every element is processed, ctx's error is returned.
//
// Unlike every other combinator in this package, MapParallel does not call
// fn in order, and may call it concurrently. It is only safe for functions
// free of side effects that do not depend on invocation order. This is not
// checked.
//
// MapParallel panics if limit is not positive.
func MapParallel[In, Out any](ctx context.Context, s []In, limit int, fn func(ctx context.Context, in In) (Out, error)) ([]Out, error) {
	if limit <= 0 {
		panic("hofn.MapParallel: limit must be positive")
	}

	out := make([]Out, len(s))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, in := range s {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := fn(gctx, in)
			if err != nil {
				return &ElementError{
					Index:  i,
					Item:   in,
					Reason: err,
				}
			}
			out[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
