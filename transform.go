package hofn

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// TryMapFunc is a mapping function that may return an error.
	//
	// The first error stops the combinator that called it.
	TryMapFunc[In, Out any] func(in In) (Out, error)

	// IndexedMapFunc is a mapping function that also receives the 0-based
	// position of the value.
	IndexedMapFunc[In, Out any] func(i int, in In) Out

	// TryIndexedMapFunc is the failing counterpart of IndexedMapFunc.
	TryIndexedMapFunc[In, Out any] func(i int, in In) (Out, error)

	// Predicate represents a filtering function that returns true when the
	// provided value should be selected.
	Predicate[T any] func(item T) bool
)

// Map transforms each value of s using fn and returns the results in a new
// slice of the same length.
//
// fn is called exactly once per element, from first to last. s is never
// modified.
func Map[In, Out any](s []In, fn MapFunc[In, Out]) []Out {
	out := make([]Out, len(s))
	for i, in := range s {
		out[i] = fn(in)
	}
	return out
}

// TryMap is Map for functions that may fail.
//
// The first non-nil error returned by fn stops the iteration: the remaining
// elements are not visited and TryMap returns a nil slice together with an
// *ElementError wrapping the failure.
func TryMap[In, Out any](s []In, fn TryMapFunc[In, Out]) ([]Out, error) {
	return TryMapIndexed(s, func(_ int, in In) (Out, error) {
		return fn(in)
	})
}

// MapIndexed is Map where fn also receives the position of each value.
func MapIndexed[In, Out any](s []In, fn IndexedMapFunc[In, Out]) []Out {
	out := make([]Out, len(s))
	for i, in := range s {
		out[i] = fn(i, in)
	}
	return out
}

// TryMapIndexed is the fail-fast version of MapIndexed. See TryMap.
func TryMapIndexed[In, Out any](s []In, fn TryIndexedMapFunc[In, Out]) ([]Out, error) {
	out := make([]Out, len(s))
	for i, in := range s {
		result, err := fn(i, in)
		if err != nil {
			return nil, &ElementError{
				Index:  i,
				Item:   in,
				Reason: err,
			}
		}
		out[i] = result
	}
	return out, nil
}

// Filter returns the values of s for which predicate returns true, in their
// original order.
//
// Unlike Find, Filter never short-circuits: predicate is evaluated exactly
// once on every element.
func Filter[T any](s []T, predicate Predicate[T]) []T {
	out := make([]T, 0, len(s))
	for _, in := range s {
		if predicate(in) {
			out = append(out, in)
		}
	}
	return out
}
