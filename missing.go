package hofn

import "fmt"

// Maybe holds either a value of type T or the missing-value marker NA.
//
// NA is distinct from every value of T, including its zero value and, for
// floats, NaN. The zero Maybe is NA.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// NA returns the missing-value marker.
func NA[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNA reports whether m is the missing-value marker.
func (m Maybe[T]) IsNA() bool {
	return !m.ok
}

// Get returns the wrapped value and true, or the zero value and false for NA.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// OrElse returns the wrapped value, or def for NA.
func (m Maybe[T]) OrElse(def T) T {
	if !m.ok {
		return def
	}
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "NA"
	}
	return fmt.Sprint(m.value)
}

// Present wraps every value of s with Some.
func Present[T any](s []T) []Maybe[T] {
	return Map(s, Some[T])
}

// ResolveMissing is the shared "skip missing" branch of every operator
// lifted by Monoid: when both x and y are NA it returns identity, when only
// one is NA it returns the other.
//
// ResolveMissing panics when neither operand is NA; callers check for a
// missing operand first.
func ResolveMissing[T any](x, y Maybe[T], identity T) Maybe[T] {
	switch {
	case x.IsNA() && y.IsNA():
		return Some(identity)
	case x.IsNA():
		return y
	case y.IsNA():
		return x
	default:
		panic("hofn.ResolveMissing: called with no missing operand")
	}
}
