// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose rows and columns as live vectors (contiguous and strided views).
//   - Support no-copy windows (MatrixView) over the same storage.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row/Col: O(1); Clone: O(r*c); View: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/op"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
	ctxView = "View"
	ctxOp   = "ApplyOp"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and bulk writes.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve the numeric policy.
//
// Behavior highlights:
//   - Empty shapes (0×n, n×0) are legal; they flatten to empty vectors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for ragged input.
//   - ErrNaNInf for non-finite values under the validating policy.
func NewDenseFrom(values [][]float64, opts ...Option) (*Dense, error) {
	rows, cols := len(values), 0
	if rows > 0 {
		cols = len(values[0])
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w", i, len(row), cols, ErrInvalidDimensions)
		}
		for j, v := range row {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf("From", i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, IndexError("Dense."+ctxAt, row, col, m.r, m.c)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return IndexError("Dense."+ctxSet, row, col, m.r, m.c)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

func (m *Dense) UnsafeAt(row, col int) float64 { return m.data[row*m.c+col] }

func (m *Dense) UnsafeSet(row, col int, v float64) { m.data[row*m.c+col] = v }

// Row returns a live view of row i; writes through it bypass the numeric
// policy like UnsafeSet.
func (m *Dense) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, lineError("Dense.Row", i, m.r)
	}
	base := i * m.c

	return vector.Wrap(m.data[base : base+m.c : base+m.c]), nil
}

// Col returns a live strided view of column j.
func (m *Dense) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= m.c {
		return nil, lineError("Dense.Col", j, m.c)
	}

	col, err := vector.NewStrided(m.data, j, m.c, m.r)
	if err != nil {
		return nil, err
	}

	return col, nil
}

// IsView is false: a Dense owns its buffer.
func (m *Dense) IsView() bool { return false }

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawData exposes the row-major backing slice.
func (m *Dense) RawData() []float64 { return m.data }

func (m *Dense) Fill(x float64) error {
	if m.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("Dense.%s(%g): %w", ctxFill, x, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = x
	}

	return nil
}

func (m *Dense) AddScalar(x float64) error {
	if m.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("Dense.AddScalar(%g): %w", x, ErrNaNInf)
	}
	floats.AddConst(x, m.data)

	return nil
}

// ApplyOp applies o to every element. Under the validating policy the
// results are checked first and nothing is written if any is non-finite.
func (m *Dense) ApplyOp(o op.Operator) error {
	if m.validateNaNInf {
		for k, v := range m.data {
			if isNonFinite(o.Apply(v)) {
				return denseErrorf(ctxOp, k/m.c, k%m.c, ErrNaNInf)
			}
		}
	}
	op.ApplySlice(o, m.data)

	return nil
}

func (m *Dense) ElementSum() float64 { return floats.Sum(m.data) }

func (m *Dense) ElementSquaredSum() float64 { return floats.Dot(m.data, m.data) }

func (m *Dense) NonZeroCount() int64 {
	var n int64
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}

	return n
}

func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

func (m *Dense) IsFullyMutable() bool { return true }

// TransformTo computes dst = m·src with one floats.Dot per row.
func (m *Dense) TransformTo(src, dst vector.Vector) error {
	var x []float64
	if raw, ok := src.(vector.RawVector); ok {
		x = raw.RawData()
	} else {
		x = vector.ToSlice(src)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		dst.UnsafeSet(i, floats.Dot(m.data[base:base+m.c], x))
	}

	return nil
}

func (m *Dense) CopyElements(dst []float64) { copy(dst, m.data) }

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Errors:
//   - ErrBadShape when the window does not fit.
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// String renders one bracketed row per line.
func (m *Dense) String() string { return format(m) }

// MatrixView is a non-owning window into a Dense (shared storage).
type MatrixView struct {
	base *Dense
	r0   int
	c0   int
	r    int
	c    int
}

func (v *MatrixView) Rows() int { return v.r }

func (v *MatrixView) Cols() int { return v.c }

// offset translates view coordinates into the base buffer.
func (v *MatrixView) offset(i, j int) int { return (v.r0+i)*v.base.c + (v.c0 + j) }

func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, IndexError("MatrixView.At", i, j, v.r, v.c)
	}

	return v.base.data[v.offset(i, j)], nil
}

// Set writes through to the base, honoring its numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return IndexError("MatrixView.Set", i, j, v.r, v.c)
	}
	if v.base.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[v.offset(i, j)] = val

	return nil
}

func (v *MatrixView) UnsafeAt(i, j int) float64 { return v.base.data[v.offset(i, j)] }

func (v *MatrixView) UnsafeSet(i, j int, val float64) { v.base.data[v.offset(i, j)] = val }

// rowSlice returns row i of the window as a capped slice of the base.
func (v *MatrixView) rowSlice(i int) []float64 {
	start := v.offset(i, 0)

	return v.base.data[start : start+v.c : start+v.c]
}

func (v *MatrixView) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= v.r {
		return nil, lineError("MatrixView.Row", i, v.r)
	}

	return vector.Wrap(v.rowSlice(i)), nil
}

func (v *MatrixView) Col(j int) (vector.Vector, error) {
	if j < 0 || j >= v.c {
		return nil, lineError("MatrixView.Col", j, v.c)
	}
	col, err := vector.NewStrided(v.base.data, v.offset(0, j), v.base.c, v.r)
	if err != nil {
		return nil, err
	}

	return col, nil
}

// IsView is always true.
func (v *MatrixView) IsView() bool { return true }

func (v *MatrixView) IsFullyMutable() bool { return true }

// Clone materializes the window into an owned Dense with the base policy.
func (v *MatrixView) Clone() Matrix {
	out := &Dense{r: v.r, c: v.c, data: make([]float64, v.r*v.c), validateNaNInf: v.base.validateNaNInf}
	v.CopyElements(out.data)

	return out
}

// Fill writes x into the window, honoring the base numeric policy.
func (v *MatrixView) Fill(x float64) error {
	if v.base.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("MatrixView.Fill(%g): %w", x, ErrNaNInf)
	}
	for i := 0; i < v.r; i++ {
		row := v.rowSlice(i)
		for k := range row {
			row[k] = x
		}
	}

	return nil
}

func (v *MatrixView) AddScalar(x float64) error {
	if v.base.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("MatrixView.AddScalar(%g): %w", x, ErrNaNInf)
	}
	for i := 0; i < v.r; i++ {
		floats.AddConst(x, v.rowSlice(i))
	}

	return nil
}

// ApplyOp applies o inside the window. Under the validating policy the
// results are checked first and nothing is written if any is non-finite.
func (v *MatrixView) ApplyOp(o op.Operator) error {
	if v.base.validateNaNInf {
		for i := 0; i < v.r; i++ {
			for j, x := range v.rowSlice(i) {
				if isNonFinite(o.Apply(x)) {
					return fmt.Errorf("MatrixView.ApplyOp(%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
	}
	for i := 0; i < v.r; i++ {
		op.ApplySlice(o, v.rowSlice(i))
	}

	return nil
}

func (v *MatrixView) CopyElements(dst []float64) {
	for i := 0; i < v.r; i++ {
		copy(dst[i*v.c:(i+1)*v.c], v.rowSlice(i))
	}
}

func (v *MatrixView) String() string { return format(v) }

// format renders any matrix as one "[a, b, c]" line per row.
func format(m Matrix) string {
	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.UnsafeAt(i, j), 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
