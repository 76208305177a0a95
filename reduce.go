package hofn

import (
	"github.com/KasperOmsK/hofn/internal/iterx"
)

// ReduceFunc combines an accumulator with the next value of a sequence.
type ReduceFunc[Acc, T any] func(acc Acc, item T) Acc

// Reduce folds s from left to right without an initial value: the first
// element seeds the accumulator and folding starts from the second.
//
// A single-element s is returned as is, without calling fn. An empty s
// yields ErrEmptyReduction; see Monoid.Reduce for the usual way around both
// cases.
func Reduce[T any](s []T, fn ReduceFunc[T, T]) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptyReduction
	}
	return Fold(s[1:], s[0], fn), nil
}

// Fold folds s from left to right starting from init. Folding an empty s
// returns init unchanged.
func Fold[T, Acc any](s []T, init Acc, fn ReduceFunc[Acc, T]) Acc {
	acc := init
	for _, item := range s {
		acc = fn(acc, item)
	}
	return acc
}

// Scan is Reduce returning every intermediate accumulator: the result has
// the same length as s, starts with s[0] and ends with what Reduce would
// return. An empty s gives an empty result.
func Scan[T any](s []T, fn ReduceFunc[T, T]) []T {
	if len(s) == 0 {
		return []T{}
	}
	return ScanFrom(s[1:], s[0], fn)
}

// ScanFrom is Fold returning every intermediate accumulator, init
// included, so the result has len(s)+1 values.
func ScanFrom[T, Acc any](s []T, init Acc, fn ReduceFunc[Acc, T]) []Acc {
	out := make([]Acc, 0, len(s)+1)
	acc := init
	out = append(out, acc)
	for _, item := range s {
		acc = fn(acc, item)
		out = append(out, acc)
	}
	return out
}

// Find returns the first value of s satisfying predicate.
//
// Find stops at the first match: predicate is never called on the values
// after it.
func Find[T any](s []T, predicate Predicate[T]) (T, bool) {
	return find(s, predicate, false)
}

// FindLast is Find scanning from the end of s.
func FindLast[T any](s []T, predicate Predicate[T]) (T, bool) {
	return find(s, predicate, true)
}

// FindIndex returns the position of the first value of s satisfying
// predicate, or -1. It short-circuits like Find.
func FindIndex[T any](s []T, predicate Predicate[T]) int {
	return findIndex(s, predicate, false)
}

// FindLastIndex is FindIndex scanning from the end of s.
func FindLastIndex[T any](s []T, predicate Predicate[T]) int {
	return findIndex(s, predicate, true)
}

func find[T any](s []T, predicate Predicate[T], fromEnd bool) (T, bool) {
	i := findIndex(s, predicate, fromEnd)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s[i], true
}

func findIndex[T any](s []T, predicate Predicate[T], fromEnd bool) int {
	for i, item := range iterx.Indexed(s, fromEnd) {
		if predicate(item) {
			return i
		}
	}
	return -1
}
