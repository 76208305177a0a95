package hofn

// ZipMap walks a and b in lockstep and returns fn(a[i], b[i]) for every
// position i.
//
// a and b must have the same length. Shorter inputs are never recycled: a
// mismatch is reported as a *LengthError before fn is called at all.
//
// Arguments that should be shared by every call rather than split element by
// element are captured by fn itself:
//
//	scaled, err := hofn.ZipMap(xs, ws, func(x, w float64) float64 {
//	    return (x - offset) * w
//	})
func ZipMap[A, B, Out any](a []A, b []B, fn func(a A, b B) Out) ([]Out, error) {
	if len(a) != len(b) {
		return nil, &LengthError{Arg: 1, Want: len(a), Got: len(b)}
	}
	return MapIndexed(a, func(i int, x A) Out {
		return fn(x, b[i])
	}), nil
}

// ZipMapN is ZipMap for any number of sequences of the same element type.
// fn receives the i-th value of every sequence, in argument order; the args
// slice is reused between calls and must not be retained.
//
// With no sequences ZipMapN returns an empty result.
func ZipMapN[T, Out any](fn func(args []T) Out, seqs ...[]T) ([]Out, error) {
	if len(seqs) == 0 {
		return []Out{}, nil
	}
	n := len(seqs[0])
	for k, seq := range seqs[1:] {
		if len(seq) != n {
			return nil, &LengthError{Arg: k + 1, Want: n, Got: len(seq)}
		}
	}

	args := make([]T, len(seqs))
	return Map(indices(n), func(i int) Out {
		for k, seq := range seqs {
			args[k] = seq[i]
		}
		return fn(args)
	}), nil
}
