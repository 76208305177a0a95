package hofn

import (
	"fmt"
	"reflect"
	"slices"
)

// Axis selects the slices of a Matrix that an axis-wise operation visits.
type Axis int

const (
	// ByRow visits each row.
	ByRow Axis = iota
	// ByColumn visits each column.
	ByColumn
)

func (a Axis) String() string {
	switch a {
	case ByRow:
		return "row"
	case ByColumn:
		return "column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Matrix is a dense, row-major, two-dimensional collection of values.
//
// The zero value is an empty 0x0 matrix.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// NewMatrix builds a rows x cols matrix from data laid out row by row.
//
// It fails with a *LengthError if len(data) != rows*cols, and panics on
// negative dimensions.
func NewMatrix[T any](rows, cols int, data []T) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("hofn.NewMatrix: negative dimensions %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		return Matrix[T]{}, &LengthError{Arg: 2, Want: rows * cols, Got: len(data)}
	}
	return Matrix[T]{rows: rows, cols: cols, data: slices.Clone(data)}, nil
}

// FromRows builds a matrix from equally long rows. A ragged input is
// reported as a *ShapeError.
func FromRows[T any](rows [][]T) (Matrix[T], error) {
	return simplify(rows, false)
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("hofn.Matrix.At: index (%d, %d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i.
func (m Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("hofn.Matrix.Row: row %d out of range [0:%d]", i, m.rows))
	}
	return slices.Clone(m.data[i*m.cols : (i+1)*m.cols])
}

// Col returns a copy of column j.
func (m Matrix[T]) Col(j int) []T {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("hofn.Matrix.Col: column %d out of range [0:%d]", j, m.cols))
	}
	out := make([]T, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// Data returns a copy of the underlying row-major storage.
func (m Matrix[T]) Data() []T {
	return slices.Clone(m.data)
}

// Slices returns every row (ByRow) or every column (ByColumn) as its own
// slice, in order.
func (m Matrix[T]) Slices(axis Axis) [][]T {
	switch axis {
	case ByRow:
		return Map(indices(m.rows), m.Row)
	case ByColumn:
		return Map(indices(m.cols), m.Col)
	default:
		panic(fmt.Sprintf("hofn.Matrix.Slices: unknown axis %v", axis))
	}
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix[T]) Transpose() Matrix[T] {
	data := make([]T, 0, len(m.data))
	for _, col := range m.Slices(ByColumn) {
		data = append(data, col...)
	}
	return Matrix[T]{rows: m.cols, cols: m.rows, data: data}
}

// Simplify coalesces a list of per-element results into a matrix with one
// row per result.
//
// Every result must have the same length and, when T is an interface type,
// the same dynamic type at each column. Otherwise Simplify reports a
// *ShapeError for the first offending result; the caller still owns list and
// can fall back to it.
//
// An empty list simplifies to a 0x0 matrix.
func Simplify[T any](list [][]T) (Matrix[T], error) {
	return simplify(list, true)
}

func simplify[T any](list [][]T, checkTypes bool) (Matrix[T], error) {
	if len(list) == 0 {
		return Matrix[T]{}, nil
	}

	first := list[0]
	cols := len(first)
	data := make([]T, 0, len(list)*cols)
	for i, result := range list {
		if len(result) != cols {
			return Matrix[T]{}, &ShapeError{
				Index: i,
				Want:  fmt.Sprintf("length %d", cols),
				Got:   fmt.Sprintf("length %d", len(result)),
			}
		}
		if checkTypes {
			if j, ok := firstTypeMismatch(first, result); ok {
				return Matrix[T]{}, &ShapeError{
					Index: i,
					Want:  fmt.Sprintf("%s at position %d", typeName(first[j]), j),
					Got:   typeName(result[j]),
				}
			}
		}
		data = append(data, result...)
	}
	return Matrix[T]{rows: len(list), cols: cols, data: data}, nil
}

// VectorMap calls fn on every element of s and coalesces the results with
// Simplify.
//
// On a *ShapeError callers may degrade to Map, which returns the results
// unstructured.
func VectorMap[In, Out any](s []In, fn MapFunc[In, []Out]) (Matrix[Out], error) {
	return Simplify(Map(s, fn))
}

// TypedVectorMap is VectorMap with a declared result shape.
//
// proto is an example result: every call of fn must return a slice with the
// same length as proto, holding values of the same dynamic types, position
// by position. The check runs right after each call, and the first violation
// aborts the iteration with a *ContractError naming the element. No partial
// matrix is returned.
//
// On success the result has len(s) rows and len(proto) columns, even when s
// is empty.
func TypedVectorMap[In, Out any](s []In, proto []Out, fn MapFunc[In, []Out]) (Matrix[Out], error) {
	cols := len(proto)
	data := make([]Out, 0, len(s)*cols)
	for i, in := range s {
		result := fn(in)
		if len(result) != cols {
			return Matrix[Out]{}, &ContractError{
				Index: i,
				Want:  fmt.Sprintf("length %d", cols),
				Got:   fmt.Sprintf("length %d", len(result)),
			}
		}
		if j, ok := firstTypeMismatch(proto, result); ok {
			return Matrix[Out]{}, &ContractError{
				Index: i,
				Want:  fmt.Sprintf("%s at position %d", typeName(proto[j]), j),
				Got:   typeName(result[j]),
			}
		}
		data = append(data, result...)
	}
	return Matrix[Out]{rows: len(s), cols: cols, data: data}, nil
}

// firstTypeMismatch compares dynamic types position by position. want and
// got have the same length.
func firstTypeMismatch[T any](want, got []T) (int, bool) {
	for j := range want {
		if reflect.TypeOf(any(want[j])) != reflect.TypeOf(any(got[j])) {
			return j, true
		}
	}
	return 0, false
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
