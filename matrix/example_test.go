// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// ExampleNewQuadtree builds a block-diagonal matrix whose off-diagonal
// blocks allocate nothing.
func ExampleNewQuadtree() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	z, _ := matrix.NewZeroMatrix(2, 2)
	q, _ := matrix.NewQuadtree(a, z, z, a.Clone())

	y := vector.Zeros(4)
	_ = matrix.Transform(q, vector.FromSlice([]float64{1, 1, 1, 1}), y)

	fmt.Print(q)
	fmt.Println(y)
	fmt.Println(matrix.Density(q))
	fmt.Println(matrix.Fill(q, 1) != nil)
	// Output:
	// [1, 2, 0, 0]
	// [3, 4, 0, 0]
	// [0, 0, 1, 2]
	// [0, 0, 3, 4]
	// [3, 7, 3, 7]
	// 0.5
	// true
}

// ExampleRowMatrix_ReplaceRow shows that a replaced row handle is detached.
func ExampleRowMatrix_ReplaceRow() {
	m, _ := matrix.NewRowMatrixOf(vector.FromSlice([]float64{1, 2}), vector.FromSlice([]float64{3, 4}))
	old, _ := m.Row(0)
	_ = m.ReplaceRow(0, vector.FromSlice([]float64{5, 6}))
	_ = old.Set(0, -1)

	fmt.Print(m)
	fmt.Println(old)
	// Output:
	// [5, 6]
	// [3, 4]
	// [-1, 2]
}

// ExampleApplyOp applies a power operator elementwise.
func ExampleApplyOp() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 4}, {9, 16}})
	_ = matrix.ApplyOp(m, op.NewPower(0.5))
	fmt.Print(m)
	// Output:
	// [1, 2]
	// [3, 4]
}
