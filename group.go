package hofn

// PartitionByKey splits x into groups of values sharing the same key.
// keys[i] is the key of x[i].
//
// Groups appear in the order their key is first seen, and values keep their
// original order inside a group. For sorted groups, pass the result through
// SortNamed.
//
// x and keys must have the same length, otherwise a *LengthError is
// returned.
//
// For example, given:
//
//	x    = 1, 2, 3, 4, 5
//	keys = a, b, a, b, a
//
// PartitionByKey returns:
//
//	a: [1, 3, 5], b: [2, 4]
func PartitionByKey[T any, K comparable](x []T, keys []K) (Named[K, []T], error) {
	if len(x) != len(keys) {
		return Named[K, []T]{}, &LengthError{Arg: 1, Want: len(x), Got: len(keys)}
	}

	var (
		order  []K
		groups [][]T
	)
	pos := make(map[K]int)
	for i, k := range keys {
		// a key that never equals itself (NaN) always opens a new group
		j, seen := pos[k]
		if !seen {
			j = len(groups)
			pos[k] = j
			order = append(order, k)
			groups = append(groups, nil)
		}
		groups[j] = append(groups[j], x[i])
	}

	return newNamed(order, groups), nil
}

// GroupApply partitions x by keys and applies fn to every group, returning
// one result per distinct key.
//
// GroupApply is exactly PartitionByKey followed by MapNamed; use those
// directly when fn needs the key or the groups themselves are needed.
func GroupApply[T any, K comparable, Out any](x []T, keys []K, fn func(group []T) Out) (Named[K, Out], error) {
	groups, err := PartitionByKey(x, keys)
	if err != nil {
		return Named[K, Out]{}, err
	}
	return MapNamed(groups, func(_ K, group []T) Out {
		return fn(group)
	}), nil
}
