package hofn

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is reported by Simplify and VectorMap when the
	// per-element results do not share a common length or element type.
	ErrShapeMismatch = errors.New("hofn: shape mismatch")

	// ErrContractViolation is reported by TypedVectorMap when a result does
	// not match the declared prototype.
	ErrContractViolation = errors.New("hofn: contract violation")

	// ErrLengthMismatch is reported when sequences that must be walked in
	// lockstep have different lengths.
	ErrLengthMismatch = errors.New("hofn: length mismatch")

	// ErrEmptyReduction is reported by Reduce on an empty sequence.
	ErrEmptyReduction = errors.New("hofn: reduce of empty sequence with no initial value")
)

// ElementError is returned by the fail-fast combinators when the
// user-supplied function fails on one element.
//
// Index is the position of the offending element and Item its value.
type ElementError struct {
	Index  int
	Item   any
	Reason error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d (%v): %v", e.Index, e.Item, e.Reason)
}

func (e *ElementError) Unwrap() error {
	return e.Reason
}

// ShapeError describes the first result that could not be coalesced with
// the ones before it.
type ShapeError struct {
	Index int
	Want  string
	Got   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: result %d: want %s, got %s", ErrShapeMismatch, e.Index, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// ContractError identifies the element whose result broke the prototype
// given to TypedVectorMap.
type ContractError struct {
	Index int
	Want  string
	Got   string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%v: element %d: want %s, got %s", ErrContractViolation, e.Index, e.Want, e.Got)
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

// LengthError reports which argument disagreed with the first one.
type LengthError struct {
	Arg  int
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: argument %d has length %d, want %d", ErrLengthMismatch, e.Arg, e.Got, e.Want)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}
