// SPDX-License-Identifier: MIT
// Package matrix - default algorithms.
//
// Purpose:
//   - Express every derived operation once, using only Rows, Cols,
//     UnsafeAt, Set, Row and Col.
//   - Dispatch to a capability interface (Filler, Transformer, ...) when the
//     concrete type provides a storage-specific version.
//
// Determinism & Policy:
//   - Rows are visited in index order; reductions fold per-row results left
//     to right.
//   - Bulk writes are all-or-nothing: every row is checked before the first
//     write (see acceptsUniform).
//
// Complexity:
//   - Every default is O(rows*cols) plus the cost of Row on the concrete type.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// rowOf returns row i, which callers guarantee to be in range.
func rowOf(m Matrix, i int) vector.Vector {
	r, err := m.Row(i)
	if err != nil {
		panic(err)
	}

	return r
}

// acceptsUniform reports whether m can take a write applied alike to every
// element. Quadtrees are checked child by child, other composites row by
// row, so immutable zero blocks at any depth pass while keepsZero holds.
func acceptsUniform(m Matrix, keepsZero bool) bool {
	if q, ok := m.(*Quadtree); ok {
		for _, c := range q.children() {
			if !acceptsUniform(c, keepsZero) {
				return false
			}
		}

		return true
	}
	if IsFullyMutable(m) || (keepsZero && IsZero(m)) {
		return true
	}

	return checkRowsAcceptBulk(m, keepsZero, "acceptsUniform") == nil
}

// checkRowsAcceptBulk fails with ErrImmutable if any row would reject a
// uniform write.
func checkRowsAcceptBulk(m Matrix, keepsZero bool, method string) error {
	for i := 0; i < m.Rows(); i++ {
		if !vector.AcceptsUniform(rowOf(m, i), keepsZero) {
			return fmt.Errorf("%s: row %d: %w", method, i, ErrImmutable)
		}
	}

	return nil
}

// Fill sets every element to x.
//
// Errors:
//   - ErrImmutable if some storage cannot hold x; nothing is written then.
//   - ErrNaNInf from a Dense that validates finite values.
func Fill(m Matrix, x float64) error {
	if f, ok := m.(Filler); ok {
		return f.Fill(x)
	}
	if err := checkRowsAcceptBulk(m, x == 0, "Fill"); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		if err := vector.Fill(rowOf(m, i), x); err != nil {
			return fmt.Errorf("Fill: row %d: %w", i, err)
		}
	}

	return nil
}

// AddScalar adds x to every element.
func AddScalar(m Matrix, x float64) error {
	if a, ok := m.(ScalarAdder); ok {
		return a.AddScalar(x)
	}
	if err := checkRowsAcceptBulk(m, x == 0, "AddScalar"); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		if err := vector.AddScalar(rowOf(m, i), x); err != nil {
			return fmt.Errorf("AddScalar: row %d: %w", i, err)
		}
	}

	return nil
}

// AddAt adds x to the element at (i, j).
func AddAt(m Matrix, i, j int, x float64) error {
	if a, ok := m.(AtAdder); ok {
		return a.AddAt(i, j, x)
	}
	if !inBounds(m, i, j) {
		return IndexError("AddAt", i, j, m.Rows(), m.Cols())
	}

	return m.Set(i, j, m.UnsafeAt(i, j)+x)
}

// ApplyOp replaces every element e with o.Apply(e). The result equals
// applying o to each element on its own.
func ApplyOp(m Matrix, o op.Operator) error {
	if a, ok := m.(OpApplier); ok {
		return a.ApplyOp(o)
	}
	if err := checkRowsAcceptBulk(m, o.Apply(0) == 0, "ApplyOp"); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		if err := vector.ApplyOp(rowOf(m, i), o); err != nil {
			return fmt.Errorf("ApplyOp: row %d: %w", i, err)
		}
	}

	return nil
}

// ElementSum returns the sum of all elements.
func ElementSum(m Matrix) float64 {
	if s, ok := m.(ElementSummer); ok {
		return s.ElementSum()
	}
	acc := 0.0
	for i := 0; i < m.Rows(); i++ {
		acc += vector.Sum(rowOf(m, i))
	}

	return acc
}

// ElementSquaredSum returns the sum of squares of all elements.
func ElementSquaredSum(m Matrix) float64 {
	if s, ok := m.(ElementSquaredSummer); ok {
		return s.ElementSquaredSum()
	}
	acc := 0.0
	for i := 0; i < m.Rows(); i++ {
		acc += vector.SquaredSum(rowOf(m, i))
	}

	return acc
}

// NonZeroCount returns the number of elements different from 0.
func NonZeroCount(m Matrix) int64 {
	if c, ok := m.(NonZeroCounter); ok {
		return c.NonZeroCount()
	}
	var n int64
	for i := 0; i < m.Rows(); i++ {
		n += vector.NonZeroCount(rowOf(m, i))
	}

	return n
}

// Density returns NonZeroCount / (Rows*Cols). The element count is formed
// in int64. An empty matrix has density 0.
func Density(m Matrix) float64 {
	total := int64(m.Rows()) * int64(m.Cols())
	if total == 0 {
		return 0
	}

	return float64(NonZeroCount(m)) / float64(total)
}

// IsZero reports whether every element is 0.
func IsZero(m Matrix) bool {
	if z, ok := m.(ZeroTester); ok {
		return z.IsZero()
	}
	for i := 0; i < m.Rows(); i++ {
		if !vector.IsZero(rowOf(m, i)) {
			return false
		}
	}

	return true
}

// IsFullyMutable reports whether every element may be overwritten: the AND
// of IsFullyMutable over all rows.
func IsFullyMutable(m Matrix) bool {
	if r, ok := m.(MutabilityReporter); ok {
		return r.IsFullyMutable()
	}
	for i := 0; i < m.Rows(); i++ {
		if !rowOf(m, i).IsFullyMutable() {
			return false
		}
	}

	return true
}

// Transform computes dst[i] = dot(row i of m, src) for every row.
//
// Errors:
//   - ErrDimensionMismatch if src.Len() != Cols() or dst.Len() != Rows().
//   - ErrImmutable if dst is not fully mutable.
//
// Complexity: O(rows*cols).
func Transform(m Matrix, src, dst vector.Vector) error {
	if err := ValidateVecLen(src, m.Cols()); err != nil {
		return fmt.Errorf("Transform(src): %w", err)
	}
	if err := ValidateVecLen(dst, m.Rows()); err != nil {
		return fmt.Errorf("Transform(dst): %w", err)
	}
	if !dst.IsFullyMutable() {
		return fmt.Errorf("Transform(dst): %w", ErrImmutable)
	}
	if t, ok := m.(Transformer); ok {
		return t.TransformTo(src, dst)
	}
	for i := 0; i < m.Rows(); i++ {
		d, _ := vector.Dot(rowOf(m, i), src) // lengths validated above
		dst.UnsafeSet(i, d)
	}

	return nil
}

// MatVec computes y = m·x for a plain slice x and returns a new slice.
//
// Errors:
//   - ErrNilMatrix for a nil m or x; ErrDimensionMismatch if len(x) != Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	if x == nil {
		return nil, fmt.Errorf("MatVec: nil vector: %w", ErrNilMatrix)
	}
	y := vector.Zeros(m.Rows())
	if err := Transform(m, vector.Wrap(x), y); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}

	return y.RawData(), nil
}

// CopyElements writes m in row-major order into dst[offset : offset+Rows*Cols].
//
// Errors:
//   - ErrDimensionMismatch when the window does not fit into dst.
func CopyElements(m Matrix, dst []float64, offset int) error {
	r, c := m.Rows(), m.Cols()
	n := r * c
	if offset < 0 || offset > len(dst)-n {
		return fmt.Errorf("CopyElements(offset=%d): need %d elements in buffer of %d: %w",
			offset, n, len(dst), ErrDimensionMismatch)
	}
	if ec, ok := m.(ElementCopier); ok {
		ec.CopyElements(dst[offset : offset+n])
		return nil
	}
	for i := 0; i < r; i++ {
		if err := vector.CopyTo(rowOf(m, i), dst, offset+i*c); err != nil {
			return fmt.Errorf("CopyElements: row %d: %w", i, err)
		}
	}

	return nil
}

// ToSlice returns a fresh row-major copy of m.
func ToSlice(m Matrix) []float64 {
	out := make([]float64, m.Rows()*m.Cols())
	_ = CopyElements(m, out, 0) // window matches by construction

	return out
}

// AsVector flattens m into one vector without copying:
//   - 0 rows: an empty vector,
//   - 1 row: that row,
//   - 1 column: that column,
//   - otherwise the rows joined in order.
func AsVector(m Matrix) vector.Vector {
	switch {
	case m.Rows() == 0:
		return vector.Zeros(0)
	case m.Rows() == 1:
		return rowOf(m, 0)
	case m.Cols() == 1:
		c, err := m.Col(0)
		if err != nil {
			panic(err)
		}
		return c
	}

	return joinRows(m, 0, m.Rows())
}

// joinRows joins rows [lo, hi) as a balanced tree so that element access
// costs O(log rows) joins.
func joinRows(m Matrix, lo, hi int) vector.Vector {
	if hi-lo == 1 {
		return rowOf(m, lo)
	}
	mid := lo + (hi-lo)/2

	return vector.Join(joinRows(m, lo, mid), joinRows(m, mid, hi))
}

// Equals reports whether a and b have the same shape and every pair of
// elements is within eps (absolute or relative, see
// scalar.EqualWithinAbsOrRel). eps is DefaultEpsilon unless WithEpsilon is
// given.
func Equals(a, b Matrix, opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return floats.EqualApprox(da.data, db.data, eps)
		}
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if !scalar.EqualWithinAbsOrRel(a.UnsafeAt(i, j), b.UnsafeAt(i, j), eps, eps) {
				return false
			}
		}
	}

	return true
}
