// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// Rank returns the numerical rank of m: the pivot count of its RREF under
// the configured tolerance. m is not modified.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}
	buf := matrix.ToSlice(m)

	return NewReducer(opts...).Reduce(buf, m.Rows(), m.Cols(), m.Cols())
}

// Solve returns X with a·X = b for square a (n×n) and b (n×k).
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: build the augmented buffer [a | b] row by row.
//   - Stage 3: reduce with the first n columns as coefficients.
//   - Stage 4: rank < n ⇒ ErrSingular; else the trailing k columns are X.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n²(n+k)), Space O(n(n+k)).
func Solve(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	n, k := a.Rows(), b.Cols()
	if b.Rows() != n {
		return nil, fmt.Errorf("Solve: %w", matrix.ShapeError("rhs", b.Rows(), k, n, k))
	}

	width := n + k
	aug := make([]float64, n*width)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug[i*width+j] = a.UnsafeAt(i, j)
		}
		for j := 0; j < k; j++ {
			aug[i*width+n+j] = b.UnsafeAt(i, j)
		}
	}

	rank, err := NewReducer(opts...).Reduce(aug, n, width, n)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if rank < n {
		return nil, fmt.Errorf("Solve: rank %d < %d: %w", rank, n, ErrSingular)
	}

	x, err := matrix.NewDense(n, k, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	out := x.RawData()
	for i := 0; i < n; i++ {
		copy(out[i*k:(i+1)*k], aug[i*width+n:(i+1)*width])
	}

	return x, nil
}

// Inverse returns a⁻¹ for square a, computed as Solve(a, I).
func Inverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	id, err := matrix.NewIdentity(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	inv, err := Solve(a, id, opts...)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return inv, nil
}
