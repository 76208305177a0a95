package hofn

import "iter"

// MapSeq returns a lazily-evaluated sequence of fn applied to each value of
// seq.
//
// Nothing is computed until the result is iterated, and iteration stops
// pulling from seq as soon as the consumer stops.
func MapSeq[In, Out any](seq iter.Seq[In], fn MapFunc[In, Out]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// FilterSeq returns a lazily-evaluated sequence of the values of seq for
// which predicate returns true.
func FilterSeq[T any](seq iter.Seq[T], predicate Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// ScanSeq returns a lazily-evaluated sequence of running accumulators,
// starting with init. It is the streaming counterpart of ScanFrom.
func ScanSeq[T, Acc any](seq iter.Seq[T], init Acc, fn ReduceFunc[Acc, T]) iter.Seq[Acc] {
	return func(yield func(Acc) bool) {
		acc := init
		if !yield(acc) {
			return
		}
		for in := range seq {
			acc = fn(acc, in)
			if !yield(acc) {
				return
			}
		}
	}
}
