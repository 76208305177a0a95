package hofn

import (
	"cmp"
	"fmt"
	"slices"
)

// Named is an ordered sequence of values addressable by key.
//
// Keys and values are parallel slices. Key lookup goes through an index
// built once by NewNamed; when a key appears more than once, Lookup resolves
// to its first occurrence. Functions that rely on lookup by key assume keys
// are unique.
//
// A Named is immutable: Keys and Values return copies.
type Named[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

// NewNamed pairs keys with values. It fails with a *LengthError when the
// two slices have different lengths.
func NewNamed[K comparable, V any](keys []K, values []V) (Named[K, V], error) {
	if len(keys) != len(values) {
		return Named[K, V]{}, &LengthError{Arg: 1, Want: len(keys), Got: len(values)}
	}
	return newNamed(slices.Clone(keys), slices.Clone(values)), nil
}

// newNamed takes ownership of keys and values.
func newNamed[K comparable, V any](keys []K, values []V) Named[K, V] {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := index[k]; !ok {
			index[k] = i
		}
	}
	return Named[K, V]{keys: keys, values: values, index: index}
}

// Len returns the number of entries.
func (n Named[K, V]) Len() int {
	return len(n.keys)
}

// Keys returns a copy of the keys, in order.
func (n Named[K, V]) Keys() []K {
	return slices.Clone(n.keys)
}

// Values returns a copy of the values, in order.
func (n Named[K, V]) Values() []V {
	return slices.Clone(n.values)
}

// At returns the key and value at position i.
//
// At panics if i is out of range.
func (n Named[K, V]) At(i int) (K, V) {
	if i < 0 || i >= len(n.keys) {
		panic(fmt.Sprintf("hofn.Named.At: index %d out of range [0:%d]", i, len(n.keys)))
	}
	return n.keys[i], n.values[i]
}

// Lookup returns the value stored under k.
func (n Named[K, V]) Lookup(k K) (V, bool) {
	i, ok := n.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return n.values[i], true
}

// MapNamed transforms every value of n with fn, which also receives the
// value's key. Keys and their order are preserved.
func MapNamed[K comparable, In, Out any](n Named[K, In], fn func(key K, in In) Out) Named[K, Out] {
	out := MapIndexed(n.values, func(i int, in In) Out {
		return fn(n.keys[i], in)
	})
	return newNamed(slices.Clone(n.keys), out)
}

// TryMapNamed is the fail-fast version of MapNamed. The returned
// *ElementError carries the position of the failing entry.
func TryMapNamed[K comparable, In, Out any](n Named[K, In], fn func(key K, in In) (Out, error)) (Named[K, Out], error) {
	out, err := TryMapIndexed(n.values, func(i int, in In) (Out, error) {
		return fn(n.keys[i], in)
	})
	if err != nil {
		return Named[K, Out]{}, err
	}
	return newNamed(slices.Clone(n.keys), out), nil
}

// SortNamed returns a copy of n ordered by key. Entries with equal keys
// keep their relative order.
func SortNamed[K cmp.Ordered, V any](n Named[K, V]) Named[K, V] {
	order := make([]int, len(n.keys))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(n.keys[a], n.keys[b])
	})

	keys := Map(order, func(i int) K { return n.keys[i] })
	values := Map(order, func(i int) V { return n.values[i] })
	return newNamed(keys, values)
}
