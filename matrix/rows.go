// SPDX-License-Identifier: MIT

// Package matrix - RowMatrix: a matrix stored as a sequence of row vectors.
//
// Purpose:
//   - Let heterogeneous row storage (dense, strided, joined, zero) act as one
//     matrix.
//   - Row(i) is the live backing vector itself: writes through the handle are
//     writes to the matrix.
//
// Behavior highlights:
//   - At/Set delegate to the row vector, so row-level immutability surfaces
//     as ErrImmutable.
//   - ReplaceRow forgets the old vector and adopts the new one. Handles
//     obtained before the swap keep pointing at the old vector and no longer
//     affect the matrix.
//   - Reductions, Fill, AddScalar and ApplyOp use the package defaults, which
//     fold the per-row vector operations in row order.
//   - IsView is always true: the matrix holds references to vectors that
//     callers may also hold.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// RowMatrix is a matrix whose storage is a slice of row vectors of equal
// length.
type RowMatrix struct {
	rows []vector.Vector
	cols int
}

// NewRowMatrix allocates rows owned zero rows of length cols.
//
// Errors:
//   - ErrInvalidDimensions for negative dimensions.
func NewRowMatrix(rows, cols int) (*RowMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewRowMatrix(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	m := &RowMatrix{rows: make([]vector.Vector, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = vector.Zeros(cols)
	}

	return m, nil
}

// NewRowMatrixOf adopts the given vectors as rows, without copying.
//
// Errors:
//   - ErrNilMatrix for a nil row.
//   - ErrDimensionMismatch when the rows differ in length.
func NewRowMatrixOf(rows ...vector.Vector) (*RowMatrix, error) {
	m := &RowMatrix{rows: make([]vector.Vector, 0, len(rows))}
	for _, r := range rows {
		if err := m.AppendRow(r); err != nil {
			return nil, fmt.Errorf("NewRowMatrixOf: %w", err)
		}
	}

	return m, nil
}

func (m *RowMatrix) Rows() int { return len(m.rows) }

func (m *RowMatrix) Cols() int { return m.cols }

func (m *RowMatrix) At(i, j int) (float64, error) {
	if !inBounds(m, i, j) {
		return 0, IndexError("RowMatrix.At", i, j, len(m.rows), m.cols)
	}

	return m.rows[i].UnsafeAt(j), nil
}

func (m *RowMatrix) Set(i, j int, v float64) error {
	if !inBounds(m, i, j) {
		return IndexError("RowMatrix.Set", i, j, len(m.rows), m.cols)
	}
	if err := m.rows[i].Set(j, v); err != nil {
		return fmt.Errorf("RowMatrix.Set(%d,%d): %w", i, j, err)
	}

	return nil
}

func (m *RowMatrix) UnsafeAt(i, j int) float64 { return m.rows[i].UnsafeAt(j) }

func (m *RowMatrix) UnsafeSet(i, j int, v float64) { m.rows[i].UnsafeSet(j, v) }

// Row returns the backing vector of row i (a live handle, not a copy).
func (m *RowMatrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, lineError("RowMatrix.Row", i, len(m.rows))
	}

	return m.rows[i], nil
}

// Col returns a live column crossing every row.
func (m *RowMatrix) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= m.cols {
		return nil, lineError("RowMatrix.Col", j, m.cols)
	}

	return &colView{m: m, j: j}, nil
}

// IsView is always true.
func (m *RowMatrix) IsView() bool { return true }

// Clone clones every row into a new, independent RowMatrix.
func (m *RowMatrix) Clone() Matrix {
	out := &RowMatrix{rows: make([]vector.Vector, len(m.rows)), cols: m.cols}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// AppendRow adopts v as the new last row. The first row appended to a matrix
// with no rows and no columns fixes Cols().
//
// Errors:
//   - ErrNilMatrix for a nil v; ErrDimensionMismatch when v.Len() != Cols().
func (m *RowMatrix) AppendRow(v vector.Vector) error {
	if v == nil {
		return fmt.Errorf("RowMatrix.AppendRow: nil row: %w", ErrNilMatrix)
	}
	if len(m.rows) == 0 && m.cols == 0 {
		m.cols = v.Len()
	}
	if v.Len() != m.cols {
		return vector.LengthError("RowMatrix.AppendRow", v.Len(), m.cols)
	}
	m.rows = append(m.rows, v)

	return nil
}

// ReplaceRow swaps the backing vector of row i for v. The previous vector is
// detached: it keeps its values, but writes to it no longer reach m.
//
// Errors:
//   - ErrOutOfRange for a bad i; ErrNilMatrix for nil v;
//     ErrDimensionMismatch when v.Len() != Cols().
func (m *RowMatrix) ReplaceRow(i int, v vector.Vector) error {
	if i < 0 || i >= len(m.rows) {
		return lineError("RowMatrix.ReplaceRow", i, len(m.rows))
	}
	if v == nil {
		return fmt.Errorf("RowMatrix.ReplaceRow(%d): nil row: %w", i, ErrNilMatrix)
	}
	if v.Len() != m.cols {
		return vector.LengthError("RowMatrix.ReplaceRow", v.Len(), m.cols)
	}
	m.rows[i] = v

	return nil
}

// TransformTo computes one vector.Dot per row.
func (m *RowMatrix) TransformTo(src, dst vector.Vector) error {
	for i, r := range m.rows {
		d, err := vector.Dot(r, src)
		if err != nil {
			return fmt.Errorf("RowMatrix.TransformTo: row %d: %w", i, err)
		}
		dst.UnsafeSet(i, d)
	}

	return nil
}

// CopyElements copies row by row using each row's own copy path.
func (m *RowMatrix) CopyElements(dst []float64) {
	for i, r := range m.rows {
		_ = vector.CopyTo(r, dst, i*m.cols) // window validated by CopyElements
	}
}

func (m *RowMatrix) String() string { return format(m) }
