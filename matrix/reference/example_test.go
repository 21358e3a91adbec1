// SPDX-License-Identifier: MIT

package reference_test

import (
	"fmt"

	"github.com/katalvlaran/densebench/matrix/reference"
)

// ExampleDense_MatMul multiplies two 2×2 matrices.
func ExampleDense_MatMul() {
	a, _ := reference.FromNested([][]float64{{1, 2}, {3, 4}})
	b, _ := reference.FromNested([][]float64{{5, 6}, {7, 8}})

	p, err := a.MatMul(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(p)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleFromNested shows the jagged-input error.
func ExampleFromNested() {
	_, err := reference.FromNested([][]float64{{1, 2}, {3, 4, 5}})
	fmt.Println(err)
	// Output:
	// reference.FromNested: ValidateNested: row 1 has 3 values, want 2: matrix: jagged input
}
