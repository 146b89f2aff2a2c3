// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvloss/ndarray"
)

// ExampleArray_ExpandDims shows the explicit broadcast that aligns a
// (series, horizon) array with a trailing quantile axis.
func ExampleArray_ExpandDims() {
	y, _ := ndarray.FromRows([][]float64{{1, 2}, {3, 4}})
	yq, _ := y.ExpandDims(-1)
	rep, _ := yq.Repeat(3, -1)

	fmt.Println(yq.Shape())
	fmt.Println(rep.Shape())
	fmt.Println(rep)
	// Output:
	// [2 2 1]
	// [2 2 3]
	// [[[1, 1, 1], [2, 2, 2]], [[3, 3, 3], [4, 4, 4]]]
}

// ExampleMap2 subtracts a per-column vector from every row.
func ExampleMap2() {
	x, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	mu := ndarray.FromSlice([]float64{1, 1, 1})

	d, err := ndarray.Map2(x, mu, func(a, b float64) float64 { return a - b })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// [[0, 1, 2], [3, 4, 5]]
}
