package hofn_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/KasperOmsK/hofn"
)

type Sale struct {
	Region string
	Amount float64
}

// Example groups sales by region and totals them, treating unknown amounts
// as missing values.
func Example() {
	sales := []Sale{
		{"north", 10},
		{"south", 4},
		{"north", -1}, // unknown
		{"east", 7},
		{"south", 6},
	}

	regions := hofn.Map(sales, func(s Sale) string { return s.Region })
	amounts := hofn.Map(sales, func(s Sale) hofn.Maybe[float64] {
		if s.Amount < 0 {
			return hofn.NA[float64]()
		}
		return hofn.Some(s.Amount)
	})

	add := hofn.Addition[float64]()
	totals, err := hofn.GroupApply(amounts, regions, func(group []hofn.Maybe[float64]) hofn.Maybe[float64] {
		return add.Reduce(group, true)
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for i := range totals.Len() {
		region, total := totals.At(i)
		fmt.Println(region, total)
	}

	// Output:
	// north 10
	// south 10
	// east 7
}

func ExampleTryMap() {
	_, err := hofn.TryMap([]string{"1", "2", "three", "4"}, strconv.Atoi)

	var elemErr *hofn.ElementError
	if errors.As(err, &elemErr) {
		fmt.Println("failed at index", elemErr.Index)
	}

	// Output:
	// failed at index 2
}

func ExampleTypedVectorMap() {
	m, err := hofn.TypedVectorMap([]int{1, 2, 3}, []int{0, 0}, func(v int) []int {
		return []int{v, v * v}
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range m.Slices(hofn.ByRow) {
		fmt.Println(row)
	}

	// Output:
	// [1 1]
	// [2 4]
	// [3 9]
}

func ExampleScanFrom() {
	fmt.Println(hofn.Scan([]int{1, 2, 3, 4}, func(a, b int) int { return a + b }))
	fmt.Println(hofn.ScanFrom([]int{1, 2, 3, 4}, 0, func(a, b int) int { return a + b }))

	// Output:
	// [1 3 6 10]
	// [0 1 3 6 10]
}

func ExampleMonoid_Reduce() {
	add := hofn.Addition[float64]()
	na := hofn.NA[float64]()

	fmt.Println(add.Reduce(hofn.Present([]float64{1, 4, 10}), true))
	fmt.Println(add.Reduce(nil, true))
	fmt.Println(add.Reduce([]hofn.Maybe[float64]{na, na}, true))
	fmt.Println(add.Reduce([]hofn.Maybe[float64]{hofn.Some(1.0), na}, false))

	// Output:
	// 15
	// 0
	// 0
	// NA
}

func ExampleMonoid_ReduceAxis() {
	add := hofn.Addition[int]()
	m, _ := hofn.NewMatrix(2, 3, hofn.Present([]int{1, 2, 3, 4, 5, 6}))

	fmt.Println(add.ReduceAxis(m, hofn.ByRow, false))
	fmt.Println(add.ReduceAxis(m, hofn.ByColumn, false))

	// Output:
	// [6 15]
	// [5 7 9]
}

func ExampleZipMap() {
	_, err := hofn.ZipMap([]int{1, 2, 3}, []int{1, 2}, func(a, b int) int { return a + b })
	fmt.Println(errors.Is(err, hofn.ErrLengthMismatch))

	// Output:
	// true
}
