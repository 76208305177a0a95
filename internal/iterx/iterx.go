// Package iterx holds iteration helpers shared by the combinators.
package iterx

import (
	"iter"
)

// Indexed yields the positions and values of in, last to first when
// fromEnd is set.
func Indexed[T any](in []T, fromEnd bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if fromEnd {
			for i := len(in) - 1; i >= 0; i-- {
				if !yield(i, in[i]) {
					return
				}
			}
			return
		}
		for i, item := range in {
			if !yield(i, item) {
				return
			}
		}
	}
}
