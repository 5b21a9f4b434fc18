// SPDX-License-Identifier: MIT

package ops_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix/ops"
)

// ExampleReducer_Reduce solves 2x + 4y = 8, x + y = 3 from its augmented
// matrix.
func ExampleReducer_Reduce() {
	buf := []float64{
		2, 4, 8,
		1, 1, 3,
	}
	rank, err := ops.NewReducer().Reduce(buf, 2, 3, 2)
	fmt.Println(rank, err)
	fmt.Println(buf)
	// Output:
	// 2 <nil>
	// [1 0 2 0 1 1]
}
