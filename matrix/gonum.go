// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand any Matrix to gonum routines (factorizations, solvers, formatting)
//     without copying when the storage allows it.
//   - Import gonum results back into an owned Dense.
//
// Behavior highlights:
//   - A non-empty *Dense is shared with the returned *mat.Dense (same
//     backing slice); every other Matrix is wrapped by a read-only adapter.
//   - gonum panics on out-of-range At; the adapter does the same.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AsGonum exposes m as a gonum mat.Matrix.
func AsGonum(m Matrix) mat.Matrix {
	if d, ok := m.(*Dense); ok && d.r > 0 && d.c > 0 {
		return mat.NewDense(d.r, d.c, d.data)
	}

	return gonumAdapter{m: m}
}

// FromGonum copies a gonum matrix into a new Dense.
//
// Errors:
//   - ErrNaNInf for non-finite values under the validating policy.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	if r > 0 && c > 0 {
		mat.NewDense(r, c, out.data).Copy(g)
	}
	if out.validateNaNInf {
		for k, v := range out.data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("FromGonum(%d,%d): %w", k/c, k%c, ErrNaNInf)
			}
		}
	}

	return out, nil
}

// gonumAdapter satisfies mat.Matrix over any Matrix.
type gonumAdapter struct{ m Matrix }

func (a gonumAdapter) Dims() (r, c int) { return a.m.Rows(), a.m.Cols() }

func (a gonumAdapter) At(i, j int) float64 {
	if !inBounds(a.m, i, j) {
		panic(mat.ErrIndexOutOfRange)
	}

	return a.m.UnsafeAt(i, j)
}

func (a gonumAdapter) T() mat.Matrix { return mat.Transpose{Matrix: a} }
