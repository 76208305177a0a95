/*
Package hofn provides generic higher-order functions over slices: mapping,
zipping, grouping, folding, searching and filtering, plus a small toolkit
for lifting an associative binary operator into a whole family of
functions.

All combinators are package-level functions that take a slice and a
function value and return a new slice (or a Named, or a Matrix). Inputs are
never modified. Every combinator makes a single pass, calls the supplied
function synchronously from the first element to the last, and never
memoizes or parallelizes those calls; MapParallel is the only, explicit,
exception.

Iteration and shape:

	doubled := hofn.Map(xs, func(x int) int { return x * 2 })

	// TryMap stops at the first failing element.
	parsed, err := hofn.TryMap(lines, strconv.Atoi)

	// TypedVectorMap checks every result against a prototype.
	stats, err := hofn.TypedVectorMap(samples, []float64{0, 0}, func(s []float64) []float64 {
	    return []float64{mean(s), stddev(s)}
	})

Grouping is a partition followed by a map:

	sums, err := hofn.GroupApply(amounts, regions, func(g []float64) float64 {
	    return hofn.Fold(g, 0.0, func(acc, x float64) float64 { return acc + x })
	})

Errors are fail-fast and typed. The sentinel errors ErrShapeMismatch,
ErrContractViolation, ErrLengthMismatch and ErrEmptyReduction can be matched
with errors.Is; ShapeError, ContractError, LengthError and ElementError carry
the position and the expected and actual shapes. Recovery (skipping or
defaulting a failing element) belongs in the function passed to the
combinator, not in the combinator itself.

Lifting an operator:

	add := hofn.Addition[float64]()
	xs := []hofn.Maybe[float64]{hofn.Some(1.0), hofn.NA[float64](), hofn.Some(4.0)}

	add.Reduce(xs, true)     // 5
	add.Cumulative(xs, true) // 1, 1, 5
	add.Reduce(nil, true)    // 0, the identity

Accumulating state across iterations should go through Fold or Scan rather
than a closure that mutates variables outside of it.
*/
package hofn
