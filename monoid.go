package hofn

import "math"

// Number is satisfied by the built-in integer and floating-point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Monoid is an associative binary operator together with its identity
// element:
//
//	Op(Identity, x) == x == Op(x, Identity)
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//
// Monoid lifts Op into a family of functions over sequences of Maybe
// values (Reduce, Zip, Cumulative and ReduceAxis), all sharing the same
// missing-value policy. The laws are not checked; lifting an operator that
// breaks them gives meaningless results.
type Monoid[T any] struct {
	Op       func(x, y T) T
	Identity T
}

// Addition returns the + monoid, with identity 0.
func Addition[N Number]() Monoid[N] {
	return Monoid[N]{
		Op:       func(x, y N) N { return x + y },
		Identity: 0,
	}
}

// Multiplication returns the * monoid, with identity 1.
func Multiplication[N Number]() Monoid[N] {
	return Monoid[N]{
		Op:       func(x, y N) N { return x * y },
		Identity: 1,
	}
}

// Maximum returns the max monoid over float64, with identity -Inf.
func Maximum() Monoid[float64] {
	return Monoid[float64]{Op: math.Max, Identity: math.Inf(-1)}
}

// Minimum returns the min monoid over float64, with identity +Inf.
func Minimum() Monoid[float64] {
	return Monoid[float64]{Op: math.Min, Identity: math.Inf(1)}
}

// Concatenation returns the string concatenation monoid, with identity "".
func Concatenation() Monoid[string] {
	return Monoid[string]{
		Op:       func(x, y string) string { return x + y },
		Identity: "",
	}
}

// WithIdentity returns a new slice holding identity followed by xs.
//
// Folding the result with an associative operator never hits the empty
// case, and a single value still goes through the operator.
func WithIdentity[T any](identity T, xs []T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, identity)
	return append(out, xs...)
}

// Guarded returns Op lifted to Maybe operands.
//
// With skipMissing, a missing operand is resolved by ResolveMissing. Without
// it, any missing operand makes the result missing.
func (m Monoid[T]) Guarded(skipMissing bool) func(x, y Maybe[T]) Maybe[T] {
	return func(x, y Maybe[T]) Maybe[T] {
		if x.IsNA() || y.IsNA() {
			if skipMissing {
				return ResolveMissing(x, y, m.Identity)
			}
			return NA[T]()
		}
		return Some(m.Op(x.value, y.value))
	}
}

// Reduce combines every value of xs with the guarded operator.
//
// Folding starts from Identity, the same as reducing WithIdentity(xs): an
// empty xs yields Identity, and a lone value still goes through the
// operator, so a lone NA with skipMissing yields Identity too.
func (m Monoid[T]) Reduce(xs []Maybe[T], skipMissing bool) Maybe[T] {
	return Fold(xs, Some(m.Identity), m.Guarded(skipMissing))
}

// Zip combines xs and ys element by element with the guarded operator.
// Unequal lengths are rejected with a *LengthError.
func (m Monoid[T]) Zip(xs, ys []Maybe[T], skipMissing bool) ([]Maybe[T], error) {
	return ZipMap(xs, ys, m.Guarded(skipMissing))
}

// Cumulative returns the running combination of xs: position i holds the
// guarded combination of xs[0..i].
func (m Monoid[T]) Cumulative(xs []Maybe[T], skipMissing bool) []Maybe[T] {
	return Scan(xs, m.Guarded(skipMissing))
}

// ReduceAxis applies Reduce to every row (ByRow) or every column (ByColumn)
// of mat.
func (m Monoid[T]) ReduceAxis(mat Matrix[Maybe[T]], axis Axis, skipMissing bool) []Maybe[T] {
	return Map(mat.Slices(axis), func(slice []Maybe[T]) Maybe[T] {
		return m.Reduce(slice, skipMissing)
	})
}
